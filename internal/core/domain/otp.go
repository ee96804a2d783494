package domain

import "time"

// OtpPurpose scopes an OTP to the flow that requested it.
type OtpPurpose string

const (
	OtpPurposeLogin         OtpPurpose = "login"
	OtpPurposePasswordReset OtpPurpose = "password_reset"
)

// OtpVerification is a single-use 6-digit code tied to an email address.
// UserID is nil for login OTPs issued before the account exists.
type OtpVerification struct {
	OtpID     string     `json:"otpID"`
	Email     string     `json:"email"`
	UserID    *string    `json:"userID,omitempty"`
	Otp       string     `json:"-"`
	Purpose   OtpPurpose `json:"purpose"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Used      bool       `json:"used"`
	CreatedAt time.Time  `json:"createdAt"`
}
