package services_test

import (
	"context"
	"testing"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockUserRepo         *MockUserRepository
	mockMailer           *MockMailer
	service              portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMailer = new(MockMailer)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo, suite.mockUserRepo, suite.mockMailer)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (suite *NotificationServiceTestSuite) TestBroadcastNewItem_EmailsEachRecipient() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "reporter-1", Title: "Blue backpack", ItemType: domain.ItemTypeLost, Location: "Main library"}

	suite.mockNotificationRepo.On("ListNewItemRecipients", ctx, item.UserID).
		Return([]string{"a@example.com", "b@example.com"}, nil).Once()
	suite.mockMailer.On("SendNewItemAlert", ctx, []string{"a@example.com"}, item.Title, "lost", item.Location).Return(nil).Once()
	suite.mockMailer.On("SendNewItemAlert", ctx, []string{"b@example.com"}, item.Title, "lost", item.Location).Return(nil).Once()

	suite.service.BroadcastNewItem(ctx, item)

	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestBroadcastNewItem_NoRecipients() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "reporter-1", Title: "Blue backpack", ItemType: domain.ItemTypeLost}

	suite.mockNotificationRepo.On("ListNewItemRecipients", ctx, item.UserID).Return([]string{}, nil).Once()

	suite.service.BroadcastNewItem(ctx, item)

	suite.mockMailer.AssertNotCalled(suite.T(), "SendNewItemAlert",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestBroadcastNewItem_OneBadAddressDoesNotSinkBatch() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "reporter-1", Title: "Blue backpack", ItemType: domain.ItemTypeLost, Location: "Main library"}

	suite.mockNotificationRepo.On("ListNewItemRecipients", ctx, item.UserID).
		Return([]string{"bad@example.com", "good@example.com"}, nil).Once()
	suite.mockMailer.On("SendNewItemAlert", ctx, []string{"bad@example.com"}, item.Title, "lost", item.Location).
		Return(apperrors.ErrValidation).Once()
	suite.mockMailer.On("SendNewItemAlert", ctx, []string{"good@example.com"}, item.Title, "lost", item.Location).
		Return(nil).Once()

	suite.service.BroadcastNewItem(ctx, item)

	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyClaimSubmitted_RespectsOptOut() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "owner-1", Title: "Blue backpack"}
	claim := domain.FoundClaim{ClaimID: "claim-1", OriginalItemID: item.ItemID, ClaimedByUserID: "finder-1"}
	owner := &domain.User{UserID: "owner-1", Email: "owner@example.com"}
	optedOut := domain.DefaultNotificationPreference(owner.UserID)
	optedOut.NotifyClaimUpdates = false

	suite.mockUserRepo.On("FindUserByID", ctx, owner.UserID).Return(owner, nil).Once()
	suite.mockNotificationRepo.On("GetPreferences", ctx, owner.UserID).Return(&optedOut, nil).Once()

	suite.service.NotifyClaimSubmitted(ctx, item, claim)

	suite.mockMailer.AssertNotCalled(suite.T(), "SendClaimSubmittedEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotifyClaimSubmitted_EmailsOwner() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "owner-1", Title: "Blue backpack"}
	claim := domain.FoundClaim{ClaimID: "claim-1", OriginalItemID: item.ItemID, ClaimedByUserID: "finder-1"}
	owner := &domain.User{UserID: "owner-1", Email: "owner@example.com"}
	pref := domain.DefaultNotificationPreference(owner.UserID)

	suite.mockUserRepo.On("FindUserByID", ctx, owner.UserID).Return(owner, nil).Once()
	suite.mockNotificationRepo.On("GetPreferences", ctx, owner.UserID).Return(&pref, nil).Once()
	suite.mockMailer.On("SendClaimSubmittedEmail", ctx, owner.Email, item.Title).Return(nil).Once()

	suite.service.NotifyClaimSubmitted(ctx, item, claim)

	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyClaimDecision_AcceptedFlag() {
	ctx := context.Background()
	item := domain.Item{ItemID: "item-1", UserID: "owner-1", Title: "Blue backpack"}
	claim := domain.FoundClaim{ClaimID: "claim-1", OriginalItemID: item.ItemID, ClaimedByUserID: "finder-1", Status: domain.ClaimStatusAccepted}
	claimant := &domain.User{UserID: "finder-1", Email: "finder@example.com"}
	pref := domain.DefaultNotificationPreference(claimant.UserID)

	suite.mockUserRepo.On("FindUserByID", ctx, claimant.UserID).Return(claimant, nil).Once()
	suite.mockNotificationRepo.On("GetPreferences", ctx, claimant.UserID).Return(&pref, nil).Once()
	suite.mockMailer.On("SendClaimDecisionEmail", ctx, claimant.Email, item.Title, true).Return(nil).Once()

	suite.service.NotifyClaimDecision(ctx, item, claim)

	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestUpdatePreferences_Persists() {
	ctx := context.Background()
	pref := domain.NotificationPreference{UserID: "user-1", NotifyLostItems: true, NotifyFoundItems: false, NotifyClaimUpdates: true}

	suite.mockNotificationRepo.On("UpsertPreferences", ctx, pref).Return(&pref, nil).Once()

	saved, err := suite.service.UpdatePreferences(ctx, pref)

	suite.Require().NoError(err)
	suite.Equal(pref, *saved)
}
