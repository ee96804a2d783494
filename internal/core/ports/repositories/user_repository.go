package repositories

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// UserRepositoryReader has methods to read user data from the repository
type UserRepositoryReader interface {
	// FindUserByID retrieves a user by their unique ID.
	// Returns apperrors.ErrNotFound if no user exists with that ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail retrieves a user by their email address.
	// Returns apperrors.ErrNotFound if no user exists with that email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepositoryWriter has methods to write user data to the repository
type UserRepositoryWriter interface {
	// CreateUser persists a new user.
	// Returns apperrors.ErrDuplicate if the email is already registered.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UpdateUser updates mutable fields (name, password hash, login type, google id).
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UpdatePasswordHash sets a new password hash for the user.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
	// AddPoints atomically increments a user's points balance and returns the new balance.
	AddPoints(ctx context.Context, userID string, delta int) (int, error)
}

// UserRepository combines reader and writer interfaces for user data
type UserRepository interface {
	UserRepositoryReader
	UserRepositoryWriter
}
