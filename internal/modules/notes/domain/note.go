package domain

import "time"

type Note struct {
	ID        string
	Title     string
	Subject   string
	Tags      []string
	Content   string
	WordCount int
	PageCount int
	CreatedAt time.Time
}

// Upload describes a pending note upload. Exactly one of FilePath and Content
// is set: a file upload or pasted text.
type Upload struct {
	Title    string
	Subject  string
	Tags     []string
	FilePath string
	Content  string
}
