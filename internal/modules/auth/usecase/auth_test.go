package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studyhall/internal/modules/auth/domain"
	"studyhall/internal/modules/auth/service"
	"studyhall/internal/modules/auth/usecase"
	apperrors "studyhall/internal/platform/errors"
	"studyhall/internal/platform/logger"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeAPI struct {
	creds    domain.Credentials
	me       domain.User
	loginErr error
	meCalls  int
}

func (f *fakeAPI) Login(context.Context, string, string) (domain.Credentials, error) {
	return f.creds, f.loginErr
}

func (f *fakeAPI) Register(context.Context, string, string, string) (domain.Credentials, error) {
	return f.creds, nil
}

func (f *fakeAPI) Me(context.Context) (domain.User, error) {
	f.meCalls++
	return f.me, nil
}

type fakeStore struct {
	creds domain.Credentials
	ok    bool
	saves int
}

func (f *fakeStore) Save(creds domain.Credentials) error {
	f.creds = creds
	f.ok = true
	f.saves++
	return nil
}

func (f *fakeStore) Load() (domain.Credentials, bool, error) { return f.creds, f.ok, nil }

func (f *fakeStore) Clear() error {
	f.creds = domain.Credentials{}
	f.ok = false
	return nil
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestLoginValidatesStoresAndReturnsTheUser(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{creds: domain.Credentials{
		Token: "tok-1",
		User:  domain.User{ID: "u-1", Name: "Ada", Email: "ada@example.com"},
	}}
	store := &fakeStore{}
	uc := usecase.NewInteractor(api, store, service.NewTokenService(fakeClock{now: testNow}), logger.Discard())

	if _, err := uc.Login(context.Background(), "  ", "pw"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank email must fail, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "ada@example.com", ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank password must fail, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("invalid input must not touch the store")
	}

	user, err := uc.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if store.creds.Token != "tok-1" {
		t.Fatalf("login must persist credentials, got %+v", store.creds)
	}

	api.loginErr = errors.New("bad password")
	if _, err := uc.Login(context.Background(), "ada@example.com", "wrong"); err == nil {
		t.Fatalf("api failure must surface")
	}
}

func TestWhoamiRequiresStoredCredentialsAndRefreshesThem(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{me: domain.User{ID: "u-1", Name: "Ada Lovelace", Email: "ada@example.com"}}
	store := &fakeStore{}
	uc := usecase.NewInteractor(api, store, service.NewTokenService(fakeClock{now: testNow}), logger.Discard())

	if _, err := uc.Whoami(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("whoami without a login must fail, got %v", err)
	}
	if api.meCalls != 0 {
		t.Fatalf("no stored login means no request")
	}

	store.creds = domain.Credentials{Token: "tok-1", User: domain.User{ID: "u-1", Name: "Ada"}}
	store.ok = true
	user, err := uc.Whoami(context.Background())
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if user.Name != "Ada Lovelace" {
		t.Fatalf("whoami must return the server's view, got %+v", user)
	}
	if store.creds.User.Name != "Ada Lovelace" || store.creds.Token != "tok-1" {
		t.Fatalf("stored user must be refreshed while keeping the token, got %+v", store.creds)
	}
}

func TestStatusIsLocalOnlyAndFlagsAnExpiredToken(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	store := &fakeStore{}
	uc := usecase.NewInteractor(api, store, service.NewTokenService(fakeClock{now: testNow}), logger.Discard())

	status, err := uc.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.LoggedIn {
		t.Fatalf("no stored login means logged out")
	}

	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": testNow.Add(-time.Hour).Unix(),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	store.creds = domain.Credentials{Token: stale, User: domain.User{Email: "ada@example.com"}}
	store.ok = true

	status, err = uc.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.LoggedIn || !status.Expired {
		t.Fatalf("stale stored token must flag expired, got %+v", status)
	}
	if api.meCalls != 0 {
		t.Fatalf("status must never touch the network")
	}

	if err := uc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.ok {
		t.Fatalf("logout must clear the store")
	}
}
