package storage

import (
	"context"
	"errors"

	"authbase/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on email.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers.
// Email uniqueness is enforced by the store itself (a unique constraint,
// not an in-memory check), so concurrent creates for the same email let at
// most one caller succeed.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
