package usecase

import (
	"context"

	"studyhall/internal/modules/dashboard/dto"
	dashin "studyhall/internal/modules/dashboard/port/in"
	dashout "studyhall/internal/modules/dashboard/port/out"
)

// analyticsWindowDays matches the trailing window the dashboard charts show.
const analyticsWindowDays = 7

type Interactor struct {
	source dashout.Source
}

func NewInteractor(source dashout.Source) dashin.Usecase {
	return &Interactor{source: source}
}

func (i *Interactor) Overview(ctx context.Context) (dto.Overview, error) {
	stats, err := i.source.Stats(ctx)
	if err != nil {
		return dto.Overview{}, err
	}
	analytics, err := i.source.Analytics(ctx, analyticsWindowDays)
	if err != nil {
		return dto.Overview{}, err
	}
	return dto.Overview{Stats: stats, Analytics: analytics}, nil
}
