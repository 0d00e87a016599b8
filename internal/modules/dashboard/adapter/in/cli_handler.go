package in

import (
	"context"

	dashdto "studyhall/internal/modules/dashboard/dto"
	dashin "studyhall/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashin.Usecase
}

func NewCLIHandler(usecase dashin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dashdto.Overview, error) {
	return h.usecase.Overview(ctx)
}
