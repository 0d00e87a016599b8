package in

import (
	"context"

	"studyhall/internal/modules/assess/dto"
)

// Usecase is the operation set a presentation layer drives a session with.
// Navigation and selection are purely local; loading, generating, review
// recording, and submission reach the remote service.
type Usecase interface {
	LoadFlashcards(ctx context.Context, noteID string) (dto.SessionOutput, error)
	GenerateFlashcards(ctx context.Context, noteID string, count int) (dto.SessionOutput, error)
	GenerateQuiz(ctx context.Context, noteID string, count int) (dto.SessionOutput, error)

	Session() (dto.SessionOutput, error)
	Advance() (dto.SessionOutput, error)
	Retreat() (dto.SessionOutput, error)
	JumpTo(index int) (dto.SessionOutput, error)
	Flip() (dto.SessionOutput, error)
	Select(choice int) (dto.SessionOutput, error)

	RecordReview(ctx context.Context, correct bool) (dto.ReviewOutput, error)
	Submit(ctx context.Context) (dto.ResultOutput, error)
	SubmitAnswers(ctx context.Context, answers []int) (dto.ResultOutput, error)
	Result() (dto.ResultOutput, error)

	Restart() (dto.SessionOutput, error)
	Discard()
}
