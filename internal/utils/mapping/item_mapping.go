package mapping

import (
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:           d.ItemID,
		UserID:           d.UserID,
		Title:            d.Title,
		Description:      d.Description,
		ItemType:         string(d.ItemType),
		Category:         d.Category,
		Location:         d.Location,
		ItemDate:         d.ItemDate,
		ContactEmail:     d.ContactEmail,
		ContactPhone:     d.ContactPhone,
		Status:           string(d.Status),
		ResolvedByUserID: d.ResolvedByUserID,
		AcceptedClaimID:  d.AcceptedClaimID,
		ResolvedAt:       d.ResolvedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:           m.ItemID,
		UserID:           m.UserID,
		Title:            m.Title,
		Description:      m.Description,
		ItemType:         domain.ItemType(m.ItemType),
		Category:         m.Category,
		Location:         m.Location,
		ItemDate:         m.ItemDate,
		ContactEmail:     m.ContactEmail,
		ContactPhone:     m.ContactPhone,
		Status:           domain.ItemStatus(m.Status),
		ResolvedByUserID: m.ResolvedByUserID,
		AcceptedClaimID:  m.AcceptedClaimID,
		ResolvedAt:       m.ResolvedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
