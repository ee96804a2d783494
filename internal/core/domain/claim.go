package domain

// ClaimStatus tracks the review state of a found-claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusAccepted ClaimStatus = "accepted"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// FoundClaim is a finder's assertion that they located a specific lost item,
// submitted for the original poster's review.
type FoundClaim struct {
	ClaimID         string      `json:"claimID"`
	OriginalItemID  string      `json:"originalItemID"`
	ClaimedByUserID string      `json:"claimedByUserID"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	ContactEmail    string      `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
	Status          ClaimStatus `json:"status"`
	AuditFields
}

// ClaimWithClaimant is a FoundClaim joined with the claimant's identity,
// shown to the item owner when reviewing claims.
type ClaimWithClaimant struct {
	FoundClaim
	ClaimantName  string `json:"claimantName"`
	ClaimantEmail string `json:"claimantEmail"`
}

// ClaimWithItem is a FoundClaim joined with the target item's summary,
// shown to a finder reviewing their own submitted claims.
type ClaimWithItem struct {
	FoundClaim
	ItemTitle       string `json:"itemTitle"`
	ItemDescription string `json:"itemDescription"`
	ItemCategory    string `json:"itemCategory"`
}
