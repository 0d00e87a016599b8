package in

import (
	"context"

	summarydto "studyhall/internal/modules/summary/dto"
	summaryin "studyhall/internal/modules/summary/port/in"
)

type CLIHandler struct {
	usecase summaryin.Usecase
}

func NewCLIHandler(usecase summaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context, noteID string) (summarydto.SummaryOutput, error) {
	return h.usecase.Get(ctx, noteID)
}
