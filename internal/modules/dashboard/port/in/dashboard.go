package in

import (
	"context"

	"studyhall/internal/modules/dashboard/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.Overview, error)
}
