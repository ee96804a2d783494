package services

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// UserSvcFacade defines the user-facing profile and points operations
type UserSvcFacade interface {
	// GetUserByID retrieves a user's profile.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetUserByEmail retrieves a user's profile by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetPoints returns a user's current reward points balance.
	GetPoints(ctx context.Context, userID string) (int, error)
}
