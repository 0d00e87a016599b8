package out

import (
	"context"

	"studyhall/internal/modules/dashboard/domain"
)

type Source interface {
	Stats(ctx context.Context) (domain.Stats, error)
	Analytics(ctx context.Context, days int) (domain.Analytics, error)
}
