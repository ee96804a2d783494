package mapping

import (
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
)

// ToDomainNotificationPreference converts a model NotificationPreference to its domain form
func ToDomainNotificationPreference(m models.NotificationPreference) domain.NotificationPreference {
	return domain.NotificationPreference{
		UserID:             m.UserID,
		NotifyLostItems:    m.NotifyLostItems,
		NotifyFoundItems:   m.NotifyFoundItems,
		NotifyClaimUpdates: m.NotifyClaimUpdates,
	}
}
