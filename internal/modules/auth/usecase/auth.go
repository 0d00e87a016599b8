package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"studyhall/internal/modules/auth/domain"
	"studyhall/internal/modules/auth/dto"
	authin "studyhall/internal/modules/auth/port/in"
	authout "studyhall/internal/modules/auth/port/out"
	"studyhall/internal/modules/auth/service"
	apperrors "studyhall/internal/platform/errors"
)

type Interactor struct {
	api    authout.API
	store  authout.CredentialStore
	tokens *service.TokenService
	log    *slog.Logger
}

func NewInteractor(api authout.API, store authout.CredentialStore, tokens *service.TokenService, log *slog.Logger) authin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{api: api, store: store, tokens: tokens, log: log}
}

func (i *Interactor) Login(ctx context.Context, email, password string) (dto.UserOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dto.UserOutput{}, fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	creds, err := i.api.Login(ctx, email, password)
	if err != nil {
		return dto.UserOutput{}, err
	}
	if err := i.store.Save(creds); err != nil {
		return dto.UserOutput{}, fmt.Errorf("save credentials: %w", err)
	}
	i.log.Info("logged in", "email", creds.User.Email)
	return toUserOutput(creds.User), nil
}

func (i *Interactor) Register(ctx context.Context, name, email, password string) (dto.UserOutput, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return dto.UserOutput{}, fmt.Errorf("%w: name, email, and password are required", apperrors.ErrInvalidInput)
	}
	creds, err := i.api.Register(ctx, name, email, password)
	if err != nil {
		return dto.UserOutput{}, err
	}
	if err := i.store.Save(creds); err != nil {
		return dto.UserOutput{}, fmt.Errorf("save credentials: %w", err)
	}
	i.log.Info("registered", "email", creds.User.Email)
	return toUserOutput(creds.User), nil
}

// Whoami asks the server for the current user and refreshes the stored copy,
// so a renamed account shows up without a re-login.
func (i *Interactor) Whoami(ctx context.Context) (dto.UserOutput, error) {
	creds, ok, err := i.store.Load()
	if err != nil {
		return dto.UserOutput{}, err
	}
	if !ok {
		return dto.UserOutput{}, apperrors.ErrUnauthorized
	}
	user, err := i.api.Me(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	creds.User = user
	if err := i.store.Save(creds); err != nil {
		i.log.Warn("refresh stored user failed", "error", err)
	}
	return toUserOutput(user), nil
}

// Status reads only local state: stored credentials plus the unverified exp
// claim. It never touches the network.
func (i *Interactor) Status() (dto.SessionStatus, error) {
	creds, ok, err := i.store.Load()
	if err != nil {
		return dto.SessionStatus{}, err
	}
	if !ok {
		return dto.SessionStatus{}, nil
	}
	return dto.SessionStatus{
		LoggedIn: true,
		Expired:  i.tokens.Expired(creds.Token),
		User:     toUserOutput(creds.User),
	}, nil
}

func (i *Interactor) Logout() error {
	if err := i.store.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	i.log.Info("logged out")
	return nil
}

func toUserOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email}
}
