package in

import (
	"context"

	chatdto "studyhall/internal/modules/chat/dto"
	chatin "studyhall/internal/modules/chat/port/in"
)

type CLIHandler struct {
	usecase chatin.Usecase
}

func NewCLIHandler(usecase chatin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Ask(ctx context.Context, noteID, question string) (chatdto.TranscriptOutput, error) {
	return h.usecase.Ask(ctx, noteID, question)
}

func (h CLIHandler) Transcript() chatdto.TranscriptOutput {
	return h.usecase.Transcript()
}

func (h CLIHandler) Reset() {
	h.usecase.Reset()
}
