package models

import "time"

// Item represents a row in the items table.
type Item struct {
	ItemID           string     `db:"item_id"`
	UserID           string     `db:"user_id"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	ItemType         string     `db:"item_type"`
	Category         string     `db:"category"`
	Location         string     `db:"location"`
	ItemDate         *time.Time `db:"item_date"`
	ContactEmail     string     `db:"contact_email"`
	ContactPhone     string     `db:"contact_phone"`
	Status           string     `db:"status"`
	ResolvedByUserID *string    `db:"resolved_by_user_id"`
	AcceptedClaimID  *string    `db:"accepted_claim_id"`
	ResolvedAt       *time.Time `db:"resolved_at"`
	AuditFields
}
