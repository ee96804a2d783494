package repositories

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// ClaimRepositoryReader has methods to read claim data from the repository
type ClaimRepositoryReader interface {
	// FindClaimByID retrieves a claim by its unique ID.
	// Returns apperrors.ErrNotFound if no claim exists with that ID.
	FindClaimByID(ctx context.Context, claimID string) (*domain.FoundClaim, error)
	// ListClaimsForItem retrieves all claims against an item with claimant details, newest first.
	ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error)
	// ListClaimsByUser retrieves all claims submitted by a user with item details, newest first.
	ListClaimsByUser(ctx context.Context, userID string) ([]domain.ClaimWithItem, error)
	// HasPendingClaim reports whether the user already has a pending claim on the item.
	HasPendingClaim(ctx context.Context, itemID string, userID string) (bool, error)
}

// ClaimRepositoryWriter has methods to write claim data to the repository
type ClaimRepositoryWriter interface {
	// CreateClaim persists a new claim against an item.
	CreateClaim(ctx context.Context, claim domain.FoundClaim) (*domain.FoundClaim, error)
	// UpdateClaimStatus transitions a claim to the given status.
	UpdateClaimStatus(ctx context.Context, claimID string, status domain.ClaimStatus) (*domain.FoundClaim, error)
	// AcceptClaim atomically accepts a claim: marks the claim accepted, resolves the
	// item recording the claimant and timestamp, and awards the claimant points.
	// Returns apperrors.ErrConflict if the item was already resolved.
	AcceptClaim(ctx context.Context, claim domain.FoundClaim, rewardPoints int) (*domain.FoundClaim, error)
}

// ClaimRepository combines reader and writer interfaces for claim data
type ClaimRepository interface {
	ClaimRepositoryReader
	ClaimRepositoryWriter
}
