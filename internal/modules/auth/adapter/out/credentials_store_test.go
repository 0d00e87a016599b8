package out_test

import (
	"os"
	"path/filepath"
	"testing"

	"studyhall/internal/modules/auth/adapter/out"
	"studyhall/internal/modules/auth/domain"
)

func TestCredentialsRoundTripAndTokenSourceView(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store := out.NewCredentialsStore(path)

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("missing file must read as logged out, got ok=%v err=%v", ok, err)
	}
	if _, ok := store.Token(); ok {
		t.Fatalf("missing file must yield no token")
	}

	saved := domain.Credentials{
		Token: "tok-1",
		User:  domain.User{ID: "u-1", Name: "Ada", Email: "ada@example.com"},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credentials file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("credentials file must be 0600, got %v", info.Mode().Perm())
	}

	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("load after save: ok=%v err=%v", ok, err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded, saved)
	}
	if token, ok := store.Token(); !ok || token != "tok-1" {
		t.Fatalf("token source must expose the stored token, got %q ok=%v", token, ok)
	}
}

func TestInvalidatePurgesTheStoredLogin(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := out.NewCredentialsStore(path)
	if err := store.Save(domain.Credentials{Token: "tok-1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Invalidate(); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatalf("invalidate must clear the stored login")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clearing an already-clear store must succeed: %v", err)
	}
}

func TestBlankTokenOnDiskReadsAsLoggedOut(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("token: \"\"\nuser:\n  id: u-1\n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := out.NewCredentialsStore(path)
	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("blank token must read as logged out, got ok=%v err=%v", ok, err)
	}
}
