package models

import "time"

// OtpVerification represents a row in the otp_verifications table.
type OtpVerification struct {
	OtpID     string    `db:"otp_id"`
	Email     string    `db:"email"`
	UserID    *string   `db:"user_id"`
	Otp       string    `db:"otp"`
	Purpose   string    `db:"purpose"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}
