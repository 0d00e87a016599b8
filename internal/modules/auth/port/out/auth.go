package out

import (
	"context"

	"studyhall/internal/modules/auth/domain"
)

// API is the remote authentication surface.
type API interface {
	Login(ctx context.Context, email, password string) (domain.Credentials, error)
	Register(ctx context.Context, name, email, password string) (domain.Credentials, error)
	Me(ctx context.Context) (domain.User, error)
}

// CredentialStore persists credentials across runs. Load with no stored
// credentials returns ok=false, not an error.
type CredentialStore interface {
	Save(creds domain.Credentials) error
	Load() (domain.Credentials, bool, error)
	Clear() error
}
