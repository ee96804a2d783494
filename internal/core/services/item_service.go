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

// itemService provides item reporting and lifecycle operations.
type itemService struct {
	itemRepo portsrepo.ItemRepository
	notifier portssvc.NotificationSvcFacade
}

// NewItemService creates a new instance of itemService.
func NewItemService(itemRepo portsrepo.ItemRepository, notifier portssvc.NotificationSvcFacade) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo: itemRepo,
		notifier: notifier,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, userID string, params portssvc.CreateItemParams) (*domain.Item, error) {
	if params.Title == "" || (params.ItemType != domain.ItemTypeLost && params.ItemType != domain.ItemTypeFound) {
		return nil, fmt.Errorf("%w: title and a valid item type are required", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.Item{
		ItemID:       uuid.NewString(),
		UserID:       userID,
		Title:        params.Title,
		Description:  params.Description,
		ItemType:     params.ItemType,
		Category:     params.Category,
		Location:     params.Location,
		ItemDate:     params.ItemDate,
		ContactEmail: params.ContactEmail,
		ContactPhone: params.ContactPhone,
		Status:       domain.ItemStatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.itemRepo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	// Broadcast must not delay or fail the report itself.
	go s.notifier.BroadcastNewItem(context.WithoutCancel(ctx), *created)

	return created, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

func (s *itemService) ListItems(ctx context.Context, filter portsrepo.ItemListFilter) ([]domain.Item, error) {
	return s.itemRepo.ListItems(ctx, filter)
}

func (s *itemService) ListUserItems(ctx context.Context, userID string) ([]domain.Item, error) {
	return s.itemRepo.ListItems(ctx, portsrepo.ItemListFilter{UserID: userID})
}

// getOwnedItem loads an item and verifies the caller reported it.
func (s *itemService) getOwnedItem(ctx context.Context, userID string, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, userID string, itemID string, params portssvc.UpdateItemParams) (*domain.Item, error) {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		item.Title = *params.Title
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.Category != nil {
		item.Category = *params.Category
	}
	if params.Location != nil {
		item.Location = *params.Location
	}
	if params.ItemDate != nil {
		item.ItemDate = params.ItemDate
	}
	if params.ContactEmail != nil {
		item.ContactEmail = *params.ContactEmail
	}
	if params.ContactPhone != nil {
		item.ContactPhone = *params.ContactPhone
	}

	return s.itemRepo.UpdateItem(ctx, *item)
}

func (s *itemService) MarkItemFound(ctx context.Context, userID string, itemID string) (*domain.Item, error) {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemType != domain.ItemTypeLost {
		return nil, fmt.Errorf("%w: only lost items can be marked found", apperrors.ErrValidation)
	}
	if item.Status != domain.ItemStatusActive {
		return nil, apperrors.ErrConflict
	}
	return s.itemRepo.UpdateItemStatus(ctx, itemID, domain.ItemStatusFound)
}

func (s *itemService) MarkItemClaimed(ctx context.Context, userID string, itemID string) (*domain.Item, error) {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemType != domain.ItemTypeFound {
		return nil, fmt.Errorf("%w: only found items can be marked claimed", apperrors.ErrValidation)
	}
	if item.Status != domain.ItemStatusActive {
		return nil, apperrors.ErrConflict
	}
	return s.itemRepo.UpdateItemStatus(ctx, itemID, domain.ItemStatusClaimed)
}

func (s *itemService) DeleteItem(ctx context.Context, userID string, itemID string) error {
	if _, err := s.getOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.itemRepo.DeleteItem(ctx, itemID)
}
