package mapping

import (
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		LoginType:    string(d.LoginType),
		GoogleID:     d.GoogleID,
		Points:       d.Points,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		LoginType:    domain.LoginType(m.LoginType),
		GoogleID:     m.GoogleID,
		Points:       m.Points,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
