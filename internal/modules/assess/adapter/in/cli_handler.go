package in

import (
	"context"

	assessdto "studyhall/internal/modules/assess/dto"
	assessin "studyhall/internal/modules/assess/port/in"
)

type CLIHandler struct {
	usecase assessin.Usecase
}

func NewCLIHandler(usecase assessin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) LoadFlashcards(ctx context.Context, noteID string) (assessdto.SessionOutput, error) {
	return h.usecase.LoadFlashcards(ctx, noteID)
}

func (h CLIHandler) GenerateFlashcards(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error) {
	return h.usecase.GenerateFlashcards(ctx, noteID, count)
}

func (h CLIHandler) GenerateQuiz(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error) {
	return h.usecase.GenerateQuiz(ctx, noteID, count)
}

func (h CLIHandler) Session() (assessdto.SessionOutput, error) { return h.usecase.Session() }
func (h CLIHandler) Advance() (assessdto.SessionOutput, error) { return h.usecase.Advance() }
func (h CLIHandler) Retreat() (assessdto.SessionOutput, error) { return h.usecase.Retreat() }
func (h CLIHandler) Flip() (assessdto.SessionOutput, error)    { return h.usecase.Flip() }

func (h CLIHandler) JumpTo(index int) (assessdto.SessionOutput, error) {
	return h.usecase.JumpTo(index)
}

func (h CLIHandler) Select(choice int) (assessdto.SessionOutput, error) {
	return h.usecase.Select(choice)
}

func (h CLIHandler) RecordReview(ctx context.Context, correct bool) (assessdto.ReviewOutput, error) {
	return h.usecase.RecordReview(ctx, correct)
}

func (h CLIHandler) Submit(ctx context.Context) (assessdto.ResultOutput, error) {
	return h.usecase.Submit(ctx)
}

func (h CLIHandler) SubmitAnswers(ctx context.Context, answers []int) (assessdto.ResultOutput, error) {
	return h.usecase.SubmitAnswers(ctx, answers)
}

func (h CLIHandler) Result() (assessdto.ResultOutput, error)   { return h.usecase.Result() }
func (h CLIHandler) Restart() (assessdto.SessionOutput, error) { return h.usecase.Restart() }
func (h CLIHandler) Discard()                                  { h.usecase.Discard() }
