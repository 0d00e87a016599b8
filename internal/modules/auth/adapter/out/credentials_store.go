package out

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"studyhall/internal/modules/auth/domain"
	authout "studyhall/internal/modules/auth/port/out"
	"studyhall/internal/platform/httpapi"
)

type credentialsFile struct {
	Token string `yaml:"token"`
	User  struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"user"`
}

// CredentialsStore keeps credentials in a single YAML file under the data
// directory. It also serves as the HTTP client's token source, which is how a
// 401 anywhere in the app purges the stored login (Invalidate == Clear).
type CredentialsStore struct {
	path string

	mu sync.Mutex
}

var (
	_ authout.CredentialStore = (*CredentialsStore)(nil)
	_ httpapi.TokenSource     = (*CredentialsStore)(nil)
)

func NewCredentialsStore(path string) *CredentialsStore {
	return &CredentialsStore{path: path}
}

func (s *CredentialsStore) Save(creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var file credentialsFile
	file.Token = creds.Token
	file.User.ID = creds.User.ID
	file.User.Name = creds.User.Name
	file.User.Email = creds.User.Email
	raw, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *CredentialsStore) Load() (domain.Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *CredentialsStore) load() (domain.Credentials, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Credentials{}, false, nil
	}
	if err != nil {
		return domain.Credentials{}, false, fmt.Errorf("read credentials: %w", err)
	}
	var file credentialsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Credentials{}, false, fmt.Errorf("parse credentials: %w", err)
	}
	if file.Token == "" {
		return domain.Credentials{}, false, nil
	}
	return domain.Credentials{
		Token: file.Token,
		User: domain.User{
			ID:    file.User.ID,
			Name:  file.User.Name,
			Email: file.User.Email,
		},
	}, true, nil
}

func (s *CredentialsStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// Token implements httpapi.TokenSource.
func (s *CredentialsStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, ok, err := s.load()
	if err != nil || !ok {
		return "", false
	}
	return creds.Token, true
}

// Invalidate implements httpapi.TokenSource.
func (s *CredentialsStore) Invalidate() error {
	return s.Clear()
}
