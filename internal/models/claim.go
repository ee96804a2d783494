package models

// FoundClaim represents a row in the found_claims table.
type FoundClaim struct {
	ClaimID         string `db:"claim_id"`
	OriginalItemID  string `db:"original_item_id"`
	ClaimedByUserID string `db:"claimed_by_user_id"`
	Description     string `db:"description"`
	Location        string `db:"location"`
	ContactEmail    string `db:"contact_email"`
	ContactPhone    string `db:"contact_phone"`
	Status          string `db:"status"`
	AuditFields
}
