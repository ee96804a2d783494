package models

import "time"

// NotificationPreference represents a row in the notification_preferences table.
type NotificationPreference struct {
	UserID             string    `db:"user_id"`
	NotifyLostItems    bool      `db:"notify_lost_items"`
	NotifyFoundItems   bool      `db:"notify_found_items"`
	NotifyClaimUpdates bool      `db:"notify_claim_updates"`
	LastUpdatedAt      time.Time `db:"last_updated_at"`
}
