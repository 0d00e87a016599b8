package in

import (
	"context"

	authdto "studyhall/internal/modules/auth/dto"
	authin "studyhall/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.UserOutput, error) {
	return h.usecase.Login(ctx, email, password)
}

func (h CLIHandler) Register(ctx context.Context, name, email, password string) (authdto.UserOutput, error) {
	return h.usecase.Register(ctx, name, email, password)
}

func (h CLIHandler) Whoami(ctx context.Context) (authdto.UserOutput, error) {
	return h.usecase.Whoami(ctx)
}

func (h CLIHandler) Status() (authdto.SessionStatus, error) {
	return h.usecase.Status()
}

func (h CLIHandler) Logout() error {
	return h.usecase.Logout()
}
