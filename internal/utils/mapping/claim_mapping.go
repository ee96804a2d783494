package mapping

import (
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
)

// ToModelFoundClaim converts a domain FoundClaim to a model FoundClaim
func ToModelFoundClaim(d domain.FoundClaim) models.FoundClaim {
	return models.FoundClaim{
		ClaimID:         d.ClaimID,
		OriginalItemID:  d.OriginalItemID,
		ClaimedByUserID: d.ClaimedByUserID,
		Description:     d.Description,
		Location:        d.Location,
		ContactEmail:    d.ContactEmail,
		ContactPhone:    d.ContactPhone,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFoundClaim converts a model FoundClaim to a domain FoundClaim
func ToDomainFoundClaim(m models.FoundClaim) domain.FoundClaim {
	return domain.FoundClaim{
		ClaimID:         m.ClaimID,
		OriginalItemID:  m.OriginalItemID,
		ClaimedByUserID: m.ClaimedByUserID,
		Description:     m.Description,
		Location:        m.Location,
		ContactEmail:    m.ContactEmail,
		ContactPhone:    m.ContactPhone,
		Status:          domain.ClaimStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
