package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// claimService provides found-claim submission and review operations.
type claimService struct {
	claimRepo         portsrepo.ClaimRepository
	itemRepo          portsrepo.ItemRepository
	notifier          portssvc.NotificationSvcFacade
	claimRewardPoints int
}

// NewClaimService creates a new instance of claimService.
func NewClaimService(claimRepo portsrepo.ClaimRepository, itemRepo portsrepo.ItemRepository, notifier portssvc.NotificationSvcFacade, claimRewardPoints int) portssvc.ClaimSvcFacade {
	return &claimService{
		claimRepo:         claimRepo,
		itemRepo:          itemRepo,
		notifier:          notifier,
		claimRewardPoints: claimRewardPoints,
	}
}

var _ portssvc.ClaimSvcFacade = (*claimService)(nil)

func (s *claimService) CreateClaim(ctx context.Context, userID string, itemID string, params portssvc.CreateClaimParams) (*domain.FoundClaim, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Claims only make sense against lost items.
	if item.ItemType != domain.ItemTypeLost {
		return nil, apperrors.ErrNotFound
	}

	pending, err := s.claimRepo.HasPendingClaim(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("%w: you already have a pending claim on this item", apperrors.ErrDuplicate)
	}

	now := time.Now()
	claim := domain.FoundClaim{
		ClaimID:         uuid.NewString(),
		OriginalItemID:  itemID,
		ClaimedByUserID: userID,
		Description:     params.Description,
		Location:        params.Location,
		ContactEmail:    params.ContactEmail,
		ContactPhone:    params.ContactPhone,
		Status:          domain.ClaimStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.claimRepo.CreateClaim(ctx, claim)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyClaimSubmitted(context.WithoutCancel(ctx), *item, *created)

	return created, nil
}

func (s *claimService) ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error) {
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.claimRepo.ListClaimsForItem(ctx, itemID)
}

func (s *claimService) ListMyClaims(ctx context.Context, userID string) ([]domain.ClaimWithItem, error) {
	return s.claimRepo.ListClaimsByUser(ctx, userID)
}

// loadClaimForReview fetches a claim and its parent item, verifying the caller
// owns the item.
func (s *claimService) loadClaimForReview(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, *domain.Item, error) {
	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.itemRepo.FindItemByID(ctx, claim.OriginalItemID)
	if err != nil {
		return nil, nil, err
	}
	if item.UserID != userID {
		return nil, nil, apperrors.ErrForbidden
	}
	return claim, item, nil
}

func (s *claimService) AcceptClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error) {
	claim, item, err := s.loadClaimForReview(ctx, userID, claimID)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.ItemStatusResolved {
		return nil, apperrors.ErrConflict
	}

	accepted, err := s.claimRepo.AcceptClaim(ctx, *claim, s.claimRewardPoints)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyClaimDecision(context.WithoutCancel(ctx), *item, *accepted)

	return accepted, nil
}

func (s *claimService) RejectClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error) {
	claim, item, err := s.loadClaimForReview(ctx, userID, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, apperrors.ErrConflict
	}

	rejected, err := s.claimRepo.UpdateClaimStatus(ctx, claimID, domain.ClaimStatusRejected)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyClaimDecision(context.WithoutCancel(ctx), *item, *rejected)

	return rejected, nil
}
