package repositories

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// OtpRepository has methods to manage one-time password records
type OtpRepository interface {
	// ReplaceOtp deletes any prior codes for the email+purpose pair and stores the new one.
	ReplaceOtp(ctx context.Context, otp domain.OtpVerification) (*domain.OtpVerification, error)
	// FindValidOtp retrieves the unused, unexpired code matching email, code and purpose.
	// Returns apperrors.ErrInvalidOrExpiredOTP when no such code exists.
	FindValidOtp(ctx context.Context, email string, code string, purpose domain.OtpPurpose) (*domain.OtpVerification, error)
	// MarkOtpUsed marks a code as consumed so it cannot be replayed.
	MarkOtpUsed(ctx context.Context, otpID string) error
	// DeleteExpiredOtps removes used or expired codes and returns the number deleted.
	DeleteExpiredOtps(ctx context.Context) (int64, error)
}
