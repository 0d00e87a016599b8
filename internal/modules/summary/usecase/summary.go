package usecase

import (
	"context"

	"studyhall/internal/modules/summary/dto"
	summaryin "studyhall/internal/modules/summary/port/in"
	summaryout "studyhall/internal/modules/summary/port/out"
	apperrors "studyhall/internal/platform/errors"
)

type Interactor struct {
	source summaryout.Source
}

func NewInteractor(source summaryout.Source) summaryin.Usecase {
	return &Interactor{source: source}
}

func (i *Interactor) Get(ctx context.Context, noteID string) (dto.SummaryOutput, error) {
	if noteID == "" {
		return dto.SummaryOutput{}, apperrors.ErrInvalidInput
	}
	summary, err := i.source.Get(ctx, noteID)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		NoteID:    summary.NoteID,
		Title:     summary.Title,
		Body:      summary.Body,
		KeyPoints: summary.KeyPoints,
		CreatedAt: summary.CreatedAt,
	}, nil
}
