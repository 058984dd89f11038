package askademy

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-errors"
)

// CredentialStore persists the single session credential. The browser client
// used tab-scoped sessionStorage under one well-known key; here the store is
// scoped to the client process. Nothing else is persisted client-side.
type CredentialStore interface {
	Get() (string, bool)
	Set(credential string) error
	Clear() error
}

type memoryStore struct {
	mu         sync.RWMutex
	credential string
}

// NewMemoryStore returns an in-process CredentialStore, optionally seeded
// with a credential (e.g. from configuration) for Session.Restore to pick up.
func NewMemoryStore(seed ...string) CredentialStore {
	s := &memoryStore{}
	if len(seed) > 0 {
		s.credential = strings.TrimSpace(seed[0])
	}
	return s
}

func (s *memoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.credential != ""
}

func (s *memoryStore) Set(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	return nil
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a CredentialStore backed by a single file, used by the
// CLI so a login survives across invocations of the same terminal session.
func NewFileStore(path string) CredentialStore {
	return &fileStore{path: path}
}

func (s *fileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	credential := strings.TrimSpace(string(data))
	return credential, credential != ""
}

func (s *fileStore) Set(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "unable to create credential directory")
	}
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "unable to persist credential")
	}
	return nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.CategoryOperation, "unable to clear credential")
	}
	return nil
}
