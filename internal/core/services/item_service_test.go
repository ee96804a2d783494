package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemRepository
	notifier     *stubNotifier
	service      portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.notifier = newStubNotifier()
	suite.service = services.NewItemService(suite.mockItemRepo, suite.notifier)
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}

func (suite *ItemServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	params := portssvc.CreateItemParams{
		Title:    "Blue backpack",
		ItemType: domain.ItemTypeLost,
		Category: "bags",
		Location: "Main library",
	}

	suite.mockItemRepo.On("CreateItem", ctx, mock.MatchedBy(func(item domain.Item) bool {
		return item.UserID == "user-1" &&
			item.Title == params.Title &&
			item.ItemType == domain.ItemTypeLost &&
			item.Status == domain.ItemStatusActive &&
			item.ItemID != ""
	})).Return(&domain.Item{ItemID: "item-1", UserID: "user-1", Title: params.Title, ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}, nil).Once()

	created, err := suite.service.CreateItem(ctx, "user-1", params)

	suite.Require().NoError(err)
	suite.Equal(domain.ItemStatusActive, created.Status)

	broadcast, ok := waitFor(suite.notifier.broadcasts, time.Second)
	suite.Require().True(ok, "expected a new-item broadcast")
	suite.Equal(created.ItemID, broadcast.ItemID)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_MissingTitle() {
	_, err := suite.service.CreateItem(context.Background(), "user-1", portssvc.CreateItemParams{ItemType: domain.ItemTypeLost})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestCreateItem_InvalidType() {
	_, err := suite.service.CreateItem(context.Background(), "user-1", portssvc.CreateItemParams{Title: "Keys", ItemType: "misplaced"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestListUserItems_FiltersByUser() {
	ctx := context.Background()

	suite.mockItemRepo.On("ListItems", ctx, portsrepo.ItemListFilter{UserID: "user-1"}).
		Return([]domain.Item{{ItemID: "item-1", UserID: "user-1"}}, nil).Once()

	items, err := suite.service.ListUserItems(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_MergesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Item{
		ItemID:      "item-1",
		UserID:      "user-1",
		Title:       "Blue backpack",
		Description: "Left at the gym",
		ItemType:    domain.ItemTypeLost,
		Location:    "Gym",
		Status:      domain.ItemStatusActive,
	}
	newTitle := "Navy backpack"

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.Item) bool {
		return item.Title == newTitle &&
			item.Description == "Left at the gym" &&
			item.Location == "Gym"
	})).Return(&domain.Item{ItemID: "item-1", Title: newTitle}, nil).Once()

	updated, err := suite.service.UpdateItem(ctx, "user-1", existing.ItemID, portssvc.UpdateItemParams{Title: &newTitle})

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NotOwner() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	_, err := suite.service.UpdateItem(ctx, "intruder", existing.ItemID, portssvc.UpdateItemParams{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestMarkItemFound_Success() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("UpdateItemStatus", ctx, existing.ItemID, domain.ItemStatusFound).
		Return(&domain.Item{ItemID: "item-1", Status: domain.ItemStatusFound}, nil).Once()

	updated, err := suite.service.MarkItemFound(ctx, "user-1", existing.ItemID)

	suite.Require().NoError(err)
	suite.Equal(domain.ItemStatusFound, updated.Status)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestMarkItemFound_FoundTypeItem() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeFound, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	_, err := suite.service.MarkItemFound(ctx, "user-1", existing.ItemID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItemStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestMarkItemFound_AlreadyResolved() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusResolved}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	_, err := suite.service.MarkItemFound(ctx, "user-1", existing.ItemID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItemStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestMarkItemClaimed_Success() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeFound, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("UpdateItemStatus", ctx, existing.ItemID, domain.ItemStatusClaimed).
		Return(&domain.Item{ItemID: "item-1", Status: domain.ItemStatusClaimed}, nil).Once()

	updated, err := suite.service.MarkItemClaimed(ctx, "user-1", existing.ItemID)

	suite.Require().NoError(err)
	suite.Equal(domain.ItemStatusClaimed, updated.Status)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_NotOwner() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()

	err := suite.service.DeleteItem(ctx, "intruder", existing.ItemID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "DeleteItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_Success() {
	ctx := context.Background()
	existing := &domain.Item{ItemID: "item-1", UserID: "user-1", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}

	suite.mockItemRepo.On("FindItemByID", ctx, existing.ItemID).Return(existing, nil).Once()
	suite.mockItemRepo.On("DeleteItem", ctx, existing.ItemID).Return(nil).Once()

	err := suite.service.DeleteItem(ctx, "user-1", existing.ItemID)

	suite.Require().NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}
