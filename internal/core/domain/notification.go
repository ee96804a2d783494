package domain

// NotificationPreference holds a user's opt-in flags for email broadcasts.
// A user without a stored row is treated as fully opted in.
type NotificationPreference struct {
	UserID             string `json:"userID"`
	NotifyLostItems    bool   `json:"notifyLostItems"`
	NotifyFoundItems   bool   `json:"notifyFoundItems"`
	NotifyClaimUpdates bool   `json:"notifyClaimUpdates"`
}

// DefaultNotificationPreference returns the opt-in defaults for a user.
func DefaultNotificationPreference(userID string) NotificationPreference {
	return NotificationPreference{
		UserID:             userID,
		NotifyLostItems:    true,
		NotifyFoundItems:   true,
		NotifyClaimUpdates: true,
	}
}
