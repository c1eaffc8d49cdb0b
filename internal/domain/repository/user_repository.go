// Package repository defines the persistence contracts consumed by the use cases.
package repository

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is the sentinel returned by lookups that match no account.
// The use case layer translates it into the appropriate domain error.
var ErrUserNotFound = errors.New("user not found")

// UserRepository abstracts the persistence layer for user accounts.
// Implementations must enforce email uniqueness at the storage layer;
// Create reports a duplicate email as domainerrors.ErrEmailAlreadyRegistered
// so that concurrent signups cannot both succeed.
type UserRepository interface {
	// Create persists a new account and fills in the store-generated
	// ID and timestamps on the given entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the account matching the given email,
	// or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the account with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Save updates an existing account.
	Save(ctx context.Context, user *entity.User) error

	// FindAll returns every account. Unpaginated; acceptable only at
	// small scale.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
