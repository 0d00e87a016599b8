package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Transcript is the in-memory conversation for one note. It is never
// persisted; switching notes starts a fresh one.
type Transcript struct {
	NoteID   string
	Messages []Message
}

func (t *Transcript) Append(role Role, content string, at time.Time) {
	t.Messages = append(t.Messages, Message{Role: role, Content: content, At: at})
}
