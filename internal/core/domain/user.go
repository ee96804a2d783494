package domain

// LoginType identifies how a user account authenticates.
type LoginType string

const (
	LoginTypeEmail  LoginType = "email"
	LoginTypeGoogle LoginType = "google"
)

// User represents a user of the application in the domain.
// PasswordHash is nil for accounts provisioned via OTP or Google OAuth.
type User struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Name         string    `json:"name"`
	LoginType    LoginType `json:"loginType"`
	GoogleID     *string   `json:"-"`
	Points       int       `json:"points"`
	AuditFields
}

// GoogleUserInfo holds the identity claims extracted from a validated Google ID token.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
