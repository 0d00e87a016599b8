package dto

type MessageOutput struct {
	Role    string
	Content string
}

type TranscriptOutput struct {
	NoteID   string
	Messages []MessageOutput
}
