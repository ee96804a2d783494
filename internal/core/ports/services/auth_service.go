package services

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// AuthResult bundles the authenticated user and their access token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthSvcFacade defines the email/password authentication operations
type AuthSvcFacade interface {
	// Signup registers a new email/password account and issues a token.
	// Returns apperrors.ErrDuplicate if the email is already registered.
	Signup(ctx context.Context, name string, email string, password string) (*AuthResult, error)
	// Login authenticates an email/password account and issues a token.
	// Returns apperrors.ErrUnauthorized on bad credentials.
	Login(ctx context.Context, email string, password string) (*AuthResult, error)
	// CheckEmail reports whether an account exists for the email and its login type.
	CheckEmail(ctx context.Context, email string) (exists bool, loginType domain.LoginType, err error)
	// ResetPassword sets a new password after OTP verification.
	ResetPassword(ctx context.Context, email string, code string, newPassword string) error
}

// VerifyOtpParams carries the fields of an OTP login verification.
type VerifyOtpParams struct {
	Email string
	Code  string
	// Name is used when the verification provisions a new account.
	Name       string
	RememberMe bool
	// IsSignup and IsAutoRegister both allow provisioning an account for an
	// email that has none yet.
	IsSignup       bool
	IsAutoRegister bool
}

// OtpSvcFacade defines the email one-time-password operations
type OtpSvcFacade interface {
	// SendLoginOtp generates a login code for the email and sends it.
	// When isSignup is set, the email must not already be registered.
	SendLoginOtp(ctx context.Context, email string, isSignup bool) error
	// SendPasswordResetOtp generates a reset code for an existing account and sends it.
	SendPasswordResetOtp(ctx context.Context, email string) error
	// VerifyOtp consumes a login code, provisioning the account if allowed,
	// and issues a token. Returns apperrors.ErrInvalidOrExpiredOTP on bad codes.
	VerifyOtp(ctx context.Context, params VerifyOtpParams) (*AuthResult, error)
	// CleanupExpired removes used and expired codes, returning the number deleted.
	CleanupExpired(ctx context.Context) (int64, error)
}

// GoogleOAuthSvcFacade defines the Google OAuth login operations
type GoogleOAuthSvcFacade interface {
	// GetAuthURL generates a fresh state token and the Google consent URL for it.
	GetAuthURL(ctx context.Context) (string, error)
	// HandleCallback validates state, exchanges the code, verifies the identity
	// and signs the user in, provisioning the account if needed.
	HandleCallback(ctx context.Context, state string, code string) (*AuthResult, error)
	// IsConfigured reports whether Google OAuth credentials are present.
	IsConfigured() bool
}
