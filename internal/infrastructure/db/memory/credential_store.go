// Package memory holds process-local implementations of the storage ports.
// Everything here is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

// CredentialStore is the credential map kept in process memory.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string]string
}

// NewCredentialStore returns a store seeded with a copy of seed.
func NewCredentialStore(seed map[string]string) *CredentialStore {
	users := make(map[string]string, len(seed))
	for k, v := range seed {
		users[k] = v
	}
	return &CredentialStore{users: users}
}

func (s *CredentialStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pw, ok := s.users[key]
	return pw, ok, nil
}

func (s *CredentialStore) Create(_ context.Context, key, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[key]; ok {
		return domain.ErrUserExists
	}
	s.users[key] = password
	return nil
}
