package in

import (
	"context"

	"studyhall/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, email, password string) (dto.UserOutput, error)
	Register(ctx context.Context, name, email, password string) (dto.UserOutput, error)
	Whoami(ctx context.Context) (dto.UserOutput, error)
	Status() (dto.SessionStatus, error)
	Logout() error
}
