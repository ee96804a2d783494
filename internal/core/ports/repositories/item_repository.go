package repositories

import (
	"context"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// ItemListFilter narrows down the items returned by ListItems.
// Zero values mean "no filtering" for that field.
type ItemListFilter struct {
	ItemType domain.ItemType
	Status   domain.ItemStatus
	Category string
	Search   string
	UserID   string
}

// ItemRepositoryReader has methods to read item data from the repository
type ItemRepositoryReader interface {
	// FindItemByID retrieves an item by its unique ID.
	// Returns apperrors.ErrNotFound if no item exists with that ID.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	// ListItems retrieves items matching the filter, newest first.
	ListItems(ctx context.Context, filter ItemListFilter) ([]domain.Item, error)
}

// ItemRepositoryWriter has methods to write item data to the repository
type ItemRepositoryWriter interface {
	// CreateItem persists a new item report.
	CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	// UpdateItem updates the mutable fields of an item.
	UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	// UpdateItemStatus transitions an item to the given status.
	UpdateItemStatus(ctx context.Context, itemID string, status domain.ItemStatus) (*domain.Item, error)
	// DeleteItem removes an item and its claims.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemRepository combines reader and writer interfaces for item data
type ItemRepository interface {
	ItemRepositoryReader
	ItemRepositoryWriter
}
