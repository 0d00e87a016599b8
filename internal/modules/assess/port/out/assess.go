package out

import (
	"context"

	"studyhall/internal/modules/assess/domain"
)

// FlashcardSource loads or generates the flashcard set for a note. Both calls
// replace any previously held set wholesale. A note without flashcards yields
// an empty set, not an error — that is the normal first-time state.
type FlashcardSource interface {
	Load(ctx context.Context, noteID string) (domain.ItemSet, error)
	Generate(ctx context.Context, noteID string, count int) (domain.ItemSet, error)
}

// ReviewRecorder persists one flashcard outcome. The reply is an
// acknowledgment only; callers treat failures as best-effort.
type ReviewRecorder interface {
	Record(ctx context.Context, itemID string, correct bool) error
}

// QuizSource generates a fresh quiz for a note.
type QuizSource interface {
	Generate(ctx context.Context, noteID string, count int) (domain.ItemSet, error)
}

// QuizSubmitter submits a finished attempt. The returned result is the single
// source of truth for the completed-session snapshot.
type QuizSubmitter interface {
	Submit(ctx context.Context, sub domain.Submission) (domain.Result, error)
}
