package services

import (
	"context"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
)

// CreateItemParams carries the fields needed to report a lost or found item.
type CreateItemParams struct {
	Title        string
	Description  string
	ItemType     domain.ItemType
	Category     string
	Location     string
	ItemDate     *time.Time
	ContactEmail string
	ContactPhone string
}

// UpdateItemParams carries the editable fields of an item. Nil pointers leave
// the current value untouched.
type UpdateItemParams struct {
	Title        *string
	Description  *string
	Category     *string
	Location     *string
	ItemDate     *time.Time
	ContactEmail *string
	ContactPhone *string
}

// ItemSvcFacade defines the item reporting and lifecycle operations
type ItemSvcFacade interface {
	// CreateItem reports a new lost or found item on behalf of the user.
	CreateItem(ctx context.Context, userID string, params CreateItemParams) (*domain.Item, error)
	// GetItemByID retrieves an item by ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	// ListItems retrieves items matching the filter, newest first.
	ListItems(ctx context.Context, filter portsrepo.ItemListFilter) ([]domain.Item, error)
	// ListUserItems retrieves all items reported by the user, newest first.
	ListUserItems(ctx context.Context, userID string) ([]domain.Item, error)
	// UpdateItem edits an item. Only the reporter may edit their item.
	UpdateItem(ctx context.Context, userID string, itemID string, params UpdateItemParams) (*domain.Item, error)
	// MarkItemFound transitions a lost item to found. Only the reporter may do this.
	MarkItemFound(ctx context.Context, userID string, itemID string) (*domain.Item, error)
	// MarkItemClaimed transitions a found item to claimed. Only the reporter may do this.
	MarkItemClaimed(ctx context.Context, userID string, itemID string) (*domain.Item, error)
	// DeleteItem removes an item and its claims. Only the reporter may delete their item.
	DeleteItem(ctx context.Context, userID string, itemID string) error
}
