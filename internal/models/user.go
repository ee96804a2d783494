package models

// User represents a user row in the users table.
// PasswordHash and GoogleID are nullable: OTP-provisioned accounts have no
// password, email-provisioned accounts have no Google subject.
type User struct {
	UserID       string  `db:"user_id"`
	Email        string  `db:"email"`
	PasswordHash *string `db:"password_hash"`
	Name         string  `db:"name"`
	LoginType    string  `db:"login_type"`
	GoogleID     *string `db:"google_id"`
	Points       int     `db:"points"`
	AuditFields
}
