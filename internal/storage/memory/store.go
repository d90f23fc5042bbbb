// Package memory provides an in-memory user.Store with the same unique-name
// semantics as the MongoDB store. Intended for tests and local development.
package memory

import (
	"context"
	"sync"

	"github.com/secureform/signupd/internal/user"
)

// Store is a mutex-guarded map keyed by user name.
type Store struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func New() *Store {
	return &Store{users: make(map[string]user.User)}
}

func (s *Store) FindByName(ctx context.Context, name string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[name]
	if !ok {
		return nil, user.ErrNotFound
	}
	// Copy so callers cannot mutate stored state.
	out := u
	return &out, nil
}

func (s *Store) Insert(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Name]; ok {
		return user.ErrAlreadyExists
	}
	s.users[u.Name] = *u
	return nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
