package services

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
)

// notificationService manages notification preferences and email broadcasts.
// Broadcast failures are logged and swallowed so notification trouble never
// breaks the request that triggered it.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepository
	userRepo         portsrepo.UserRepository
	mailer           portssvc.MailerSvcFacade
}

// NewNotificationService creates a new instance of notificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository, userRepo portsrepo.UserRepository, mailer portssvc.MailerSvcFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error) {
	return s.notificationRepo.GetPreferences(ctx, userID)
}

func (s *notificationService) UpdatePreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error) {
	return s.notificationRepo.UpsertPreferences(ctx, pref)
}

func (s *notificationService) BroadcastNewItem(ctx context.Context, item domain.Item) {
	logger := middleware.GetLoggerFromCtx(ctx)

	recipients, err := s.notificationRepo.ListNewItemRecipients(ctx, item.UserID)
	if err != nil {
		logger.Error("Failed to list broadcast recipients", "item_id", item.ItemID, "error", err)
		return
	}
	if len(recipients) == 0 {
		return
	}

	// One email per recipient so a single bad address cannot sink the batch.
	for _, email := range recipients {
		if err := s.mailer.SendNewItemAlert(ctx, []string{email}, item.Title, string(item.ItemType), item.Location); err != nil {
			logger.Warn("Failed to send new item alert", "item_id", item.ItemID, "error", err)
		}
	}
	logger.Info("New item broadcast complete", "item_id", item.ItemID, "recipients", len(recipients))
}

func (s *notificationService) NotifyClaimSubmitted(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner, err := s.userRepo.FindUserByID(ctx, item.UserID)
	if err != nil {
		logger.Error("Failed to load item owner for claim notification", "item_id", item.ItemID, "error", err)
		return
	}
	pref, err := s.notificationRepo.GetPreferences(ctx, owner.UserID)
	if err != nil || !pref.NotifyClaimUpdates {
		return
	}
	if err := s.mailer.SendClaimSubmittedEmail(ctx, owner.Email, item.Title); err != nil {
		logger.Warn("Failed to send claim submitted email", "claim_id", claim.ClaimID, "error", err)
	}
}

func (s *notificationService) NotifyClaimDecision(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claimant, err := s.userRepo.FindUserByID(ctx, claim.ClaimedByUserID)
	if err != nil {
		logger.Error("Failed to load claimant for decision notification", "claim_id", claim.ClaimID, "error", err)
		return
	}
	pref, err := s.notificationRepo.GetPreferences(ctx, claimant.UserID)
	if err != nil || !pref.NotifyClaimUpdates {
		return
	}
	accepted := claim.Status == domain.ClaimStatusAccepted
	if err := s.mailer.SendClaimDecisionEmail(ctx, claimant.Email, item.Title, accepted); err != nil {
		logger.Warn("Failed to send claim decision email", "claim_id", claim.ClaimID, "error", err)
	}
}
