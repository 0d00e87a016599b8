package domain

// Kind tags the two session variants that share the state machine.
type Kind string

const (
	KindFlashcard Kind = "flashcard"
	KindQuiz      Kind = "quiz"
)

// Item is one assessable unit: a flashcard or a quiz question. Items are
// produced by the remote service and immutable for the life of a session;
// a fresh generation call replaces the whole set. ReviewCount and
// CorrectCount are the server's lifetime counters for a flashcard — display
// only, they never seed the session's own counters.
type Item struct {
	ID            string
	Prompt        string
	Reveal        string
	Choices       []string
	CorrectChoice int
	Difficulty    string
	ReviewCount   int
	CorrectCount  int
}

// ItemSet is an ordered item sequence plus the server-side identifier of the
// collection it came from (quiz sets need it for submission; flashcard sets
// have none).
type ItemSet struct {
	ID    string
	Items []Item
}
