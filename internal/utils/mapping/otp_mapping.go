package mapping

import (
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
)

// ToDomainOtpVerification converts a model OtpVerification to its domain form
func ToDomainOtpVerification(m models.OtpVerification) domain.OtpVerification {
	return domain.OtpVerification{
		OtpID:     m.OtpID,
		Email:     m.Email,
		UserID:    m.UserID,
		Otp:       m.Otp,
		Purpose:   domain.OtpPurpose(m.Purpose),
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}
}
