package dto

import (
	"fmt"
	"strings"
	"time"
)

type SummaryOutput struct {
	NoteID    string
	Title     string
	Body      string
	KeyPoints []string
	CreatedAt time.Time
}

// Plaintext renders the summary the way the share/export action formats it:
// title, body, then a numbered key-point list.
func (s SummaryOutput) Plaintext() string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteString("\n\n")
	b.WriteString(s.Body)
	if len(s.KeyPoints) > 0 {
		b.WriteString("\n\nKey Points:")
		for index, point := range s.KeyPoints {
			fmt.Fprintf(&b, "\n%d. %s", index+1, point)
		}
	}
	return b.String()
}
