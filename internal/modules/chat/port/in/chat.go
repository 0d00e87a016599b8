package in

import (
	"context"

	"studyhall/internal/modules/chat/dto"
)

type Usecase interface {
	Ask(ctx context.Context, noteID, question string) (dto.TranscriptOutput, error)
	Transcript() dto.TranscriptOutput
	Reset()
}
