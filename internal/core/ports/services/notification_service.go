package services

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// NotificationSvcFacade defines the notification preference and broadcast operations
type NotificationSvcFacade interface {
	// GetPreferences retrieves the user's notification preferences, defaulted if unsaved.
	GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error)
	// UpdatePreferences saves the user's notification preferences.
	UpdatePreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error)
	// BroadcastNewItem emails opted-in users about a newly reported item.
	// Failures are logged, never surfaced to the reporter.
	BroadcastNewItem(ctx context.Context, item domain.Item)
	// NotifyClaimSubmitted emails the item's reporter that a claim arrived.
	NotifyClaimSubmitted(ctx context.Context, item domain.Item, claim domain.FoundClaim)
	// NotifyClaimDecision emails the claimant that their claim was accepted or rejected.
	NotifyClaimDecision(ctx context.Context, item domain.Item, claim domain.FoundClaim)
}
