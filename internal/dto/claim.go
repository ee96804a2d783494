package dto

import (
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// CreateClaimRequest defines the payload for claiming a lost item as found.
type CreateClaimRequest struct {
	ItemID       string `json:"itemID" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// ClaimResponse is the public shape of a found-claim.
type ClaimResponse struct {
	ClaimID         string    `json:"claimID"`
	OriginalItemID  string    `json:"originalItemID"`
	ClaimedByUserID string    `json:"claimedByUserID"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ClaimWithClaimantResponse is a claim joined with the claimant's identity.
type ClaimWithClaimantResponse struct {
	ClaimResponse
	ClaimantName  string `json:"claimantName"`
	ClaimantEmail string `json:"claimantEmail"`
}

// ClaimWithItemResponse is a claim joined with the target item's summary.
type ClaimWithItemResponse struct {
	ClaimResponse
	ItemTitle       string `json:"itemTitle"`
	ItemDescription string `json:"itemDescription"`
	ItemCategory    string `json:"itemCategory"`
}

// ToClaimResponse converts a domain.FoundClaim to its response DTO.
func ToClaimResponse(claim *domain.FoundClaim) ClaimResponse {
	return ClaimResponse{
		ClaimID:         claim.ClaimID,
		OriginalItemID:  claim.OriginalItemID,
		ClaimedByUserID: claim.ClaimedByUserID,
		Description:     claim.Description,
		Location:        claim.Location,
		ContactEmail:    claim.ContactEmail,
		ContactPhone:    claim.ContactPhone,
		Status:          string(claim.Status),
		CreatedAt:       claim.CreatedAt,
		LastUpdatedAt:   claim.LastUpdatedAt,
	}
}

// ToClaimWithClaimantListResponse converts joined claims to response DTOs.
func ToClaimWithClaimantListResponse(claims []domain.ClaimWithClaimant) []ClaimWithClaimantResponse {
	responses := make([]ClaimWithClaimantResponse, len(claims))
	for i := range claims {
		responses[i] = ClaimWithClaimantResponse{
			ClaimResponse: ToClaimResponse(&claims[i].FoundClaim),
			ClaimantName:  claims[i].ClaimantName,
			ClaimantEmail: claims[i].ClaimantEmail,
		}
	}
	return responses
}

// ToClaimWithItemListResponse converts joined claims to response DTOs.
func ToClaimWithItemListResponse(claims []domain.ClaimWithItem) []ClaimWithItemResponse {
	responses := make([]ClaimWithItemResponse, len(claims))
	for i := range claims {
		responses[i] = ClaimWithItemResponse{
			ClaimResponse:   ToClaimResponse(&claims[i].FoundClaim),
			ItemTitle:       claims[i].ItemTitle,
			ItemDescription: claims[i].ItemDescription,
			ItemCategory:    claims[i].ItemCategory,
		}
	}
	return responses
}
