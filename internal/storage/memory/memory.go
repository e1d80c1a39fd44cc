// Package memory implements an in-memory user store for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"authbase/internal/models"
	"authbase/internal/storage"
)

// Ensure the interface is met.
var _ storage.UserStore = (*Store)(nil)

// Store keeps users in a slice in creation order, guarded by a mutex so the
// email uniqueness check and insert are atomic under concurrent creates.
type Store struct {
	mu    sync.Mutex
	users []models.User
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// CreateUser appends a new user with a freshly assigned id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, user)
	return user, nil
}

// FindByEmail returns the user with an exact email match.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// ListUsers returns all users in creation order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
