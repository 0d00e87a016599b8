package in

import (
	"context"

	"studyhall/internal/modules/summary/dto"
)

type Usecase interface {
	Get(ctx context.Context, noteID string) (dto.SummaryOutput, error)
}
