package dto

import "time"

type NoteSummary struct {
	ID        string
	Title     string
	Subject   string
	Tags      []string
	CreatedAt time.Time
}

type NoteOutput struct {
	NoteSummary
	Content   string
	WordCount int
	PageCount int
}

type UploadInput struct {
	Title    string
	Subject  string
	Tags     []string
	FilePath string
	Content  string
}

// UploadOutput reports what was sent; Pages is the locally counted PDF page
// count, 0 for other formats.
type UploadOutput struct {
	Note  NoteSummary
	Pages int
}
