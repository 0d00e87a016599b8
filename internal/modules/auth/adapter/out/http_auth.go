package out

import (
	"context"

	"studyhall/internal/modules/auth/domain"
	authout "studyhall/internal/modules/auth/port/out"
	"studyhall/internal/platform/httpapi"
)

type userWire struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authWire struct {
	Token string   `json:"token"`
	User  userWire `json:"user"`
}

type HTTPAuth struct {
	api *httpapi.Client
}

var _ authout.API = (*HTTPAuth)(nil)

func NewHTTPAuth(api *httpapi.Client) *HTTPAuth {
	return &HTTPAuth{api: api}
}

func (h *HTTPAuth) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var wire authWire
	if err := h.api.Post(ctx, "/auth/login", body, &wire); err != nil {
		return domain.Credentials{}, err
	}
	return toCredentials(wire), nil
}

func (h *HTTPAuth) Register(ctx context.Context, name, email, password string) (domain.Credentials, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}
	var wire authWire
	if err := h.api.Post(ctx, "/auth/register", body, &wire); err != nil {
		return domain.Credentials{}, err
	}
	return toCredentials(wire), nil
}

func (h *HTTPAuth) Me(ctx context.Context) (domain.User, error) {
	var wire struct {
		User userWire `json:"user"`
	}
	if err := h.api.Get(ctx, "/auth/me", &wire); err != nil {
		return domain.User{}, err
	}
	return toUser(wire.User), nil
}

func toCredentials(wire authWire) domain.Credentials {
	return domain.Credentials{Token: wire.Token, User: toUser(wire.User)}
}

func toUser(wire userWire) domain.User {
	return domain.User{ID: wire.ID, Name: wire.Name, Email: wire.Email}
}
