package domain

import "time"

type Summary struct {
	NoteID    string
	Title     string
	Body      string
	KeyPoints []string
	CreatedAt time.Time
}
