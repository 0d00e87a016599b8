package in

import (
	"context"

	"studyhall/internal/modules/notes/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.NoteSummary, error)
	Get(ctx context.Context, id string) (dto.NoteOutput, error)
	Upload(ctx context.Context, input dto.UploadInput) (dto.UploadOutput, error)
	Delete(ctx context.Context, id string) error
}
