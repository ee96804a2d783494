package repositories

import (
	"context"
	"time"
)

// OAuthStateRepository stores short-lived OAuth state tokens used to
// protect the Google login flow against CSRF.
type OAuthStateRepository interface {
	// SaveState stores a state token with a TTL.
	SaveState(ctx context.Context, state string, ttl time.Duration) error
	// ConsumeState atomically retrieves and deletes a state token.
	// Returns apperrors.ErrNotFound if the state is unknown or expired.
	ConsumeState(ctx context.Context, state string) error
}
