package repositories

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// NotificationRepository has methods to manage per-user notification preferences
type NotificationRepository interface {
	// GetPreferences retrieves a user's notification preferences, falling back to
	// the defaults when the user has never saved any.
	GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error)
	// UpsertPreferences inserts or updates a user's notification preferences.
	UpsertPreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error)
	// ListNewItemRecipients returns the emails of users opted in to new-item alerts,
	// excluding the given user.
	ListNewItemRecipients(ctx context.Context, excludeUserID string) ([]string, error)
}
