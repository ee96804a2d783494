package services

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// CreateClaimParams carries the fields needed to claim a lost item as found.
type CreateClaimParams struct {
	Description  string
	Location     string
	ContactEmail string
	ContactPhone string
}

// ClaimSvcFacade defines the found-claim submission and review operations
type ClaimSvcFacade interface {
	// CreateClaim submits a claim that the user found the given lost item.
	// Returns apperrors.ErrDuplicate if the user already has a pending claim on it.
	CreateClaim(ctx context.Context, userID string, itemID string, params CreateClaimParams) (*domain.FoundClaim, error)
	// ListClaimsForItem retrieves claims against an item with claimant details.
	ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error)
	// ListMyClaims retrieves all claims the user has submitted.
	ListMyClaims(ctx context.Context, userID string) ([]domain.ClaimWithItem, error)
	// AcceptClaim accepts a pending claim, resolves the item and rewards the claimant.
	// Only the item's reporter may accept. Returns apperrors.ErrConflict if the item
	// was already resolved.
	AcceptClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error)
	// RejectClaim rejects a pending claim. Only the item's reporter may reject.
	RejectClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error)
}
