package domain

import "time"

// ItemType distinguishes a "lost something" listing from a "found something" listing.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// ItemStatus tracks the listing lifecycle. Transitions are one-directional:
// lost items go active -> found -> resolved, found items go active -> claimed.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusFound    ItemStatus = "found"
	ItemStatusClaimed  ItemStatus = "claimed"
	ItemStatusResolved ItemStatus = "resolved"
)

// Item represents a lost or found item listing.
type Item struct {
	ItemID           string     `json:"itemID"`
	UserID           string     `json:"userID"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ItemType         ItemType   `json:"itemType"`
	Category         string     `json:"category"`
	Location         string     `json:"location"`
	ItemDate         *time.Time `json:"itemDate,omitempty"`
	ContactEmail     string     `json:"contactEmail"`
	ContactPhone     string     `json:"contactPhone"`
	Status           ItemStatus `json:"status"`
	ResolvedByUserID *string    `json:"resolvedByUserID,omitempty"`
	AcceptedClaimID  *string    `json:"acceptedClaimID,omitempty"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`
	AuditFields
}
