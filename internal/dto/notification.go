package dto

import "github.com/FoundlyHQ/foundly-backend/internal/core/domain"

// NotificationPreferencesRequest defines the payload for saving preferences.
type NotificationPreferencesRequest struct {
	NotifyLostItems    *bool `json:"notifyLostItems" binding:"required"`
	NotifyFoundItems   *bool `json:"notifyFoundItems" binding:"required"`
	NotifyClaimUpdates *bool `json:"notifyClaimUpdates" binding:"required"`
}

// NotificationPreferencesResponse is the public shape of preferences.
type NotificationPreferencesResponse struct {
	NotifyLostItems    bool `json:"notifyLostItems"`
	NotifyFoundItems   bool `json:"notifyFoundItems"`
	NotifyClaimUpdates bool `json:"notifyClaimUpdates"`
}

// ToNotificationPreferencesResponse converts domain preferences to the response DTO.
func ToNotificationPreferencesResponse(pref *domain.NotificationPreference) NotificationPreferencesResponse {
	return NotificationPreferencesResponse{
		NotifyLostItems:    pref.NotifyLostItems,
		NotifyFoundItems:   pref.NotifyFoundItems,
		NotifyClaimUpdates: pref.NotifyClaimUpdates,
	}
}
