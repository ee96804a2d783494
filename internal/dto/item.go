package dto

import (
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
)

// CreateItemRequest defines the payload for reporting a lost or found item.
type CreateItemRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	ItemType     string     `json:"itemType" binding:"required,oneof=lost found"`
	Category     string     `json:"category"`
	Location     string     `json:"location"`
	ItemDate     *time.Time `json:"itemDate"`
	ContactEmail string     `json:"contactEmail"`
	ContactPhone string     `json:"contactPhone"`
}

// UpdateItemRequest defines the editable fields of an item.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateItemRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	Location     *string    `json:"location"`
	ItemDate     *time.Time `json:"itemDate"`
	ContactEmail *string    `json:"contactEmail"`
	ContactPhone *string    `json:"contactPhone"`
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	Type     string `form:"type" binding:"omitempty,itemtype"`
	Status   string `form:"status" binding:"omitempty,itemstatus"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

// ItemResponse is the public shape of an item listing.
type ItemResponse struct {
	ItemID           string     `json:"itemID"`
	UserID           string     `json:"userID"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ItemType         string     `json:"itemType"`
	Category         string     `json:"category"`
	Location         string     `json:"location"`
	ItemDate         *time.Time `json:"itemDate,omitempty"`
	ContactEmail     string     `json:"contactEmail"`
	ContactPhone     string     `json:"contactPhone"`
	Status           string     `json:"status"`
	ResolvedByUserID *string    `json:"resolvedByUserID,omitempty"`
	AcceptedClaimID  *string    `json:"acceptedClaimID,omitempty"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	LastUpdatedAt    time.Time  `json:"lastUpdatedAt"`
}

// ToItemResponse converts a domain.Item to its response DTO.
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:           item.ItemID,
		UserID:           item.UserID,
		Title:            item.Title,
		Description:      item.Description,
		ItemType:         string(item.ItemType),
		Category:         item.Category,
		Location:         item.Location,
		ItemDate:         item.ItemDate,
		ContactEmail:     item.ContactEmail,
		ContactPhone:     item.ContactPhone,
		Status:           string(item.Status),
		ResolvedByUserID: item.ResolvedByUserID,
		AcceptedClaimID:  item.AcceptedClaimID,
		ResolvedAt:       item.ResolvedAt,
		CreatedAt:        item.CreatedAt,
		LastUpdatedAt:    item.LastUpdatedAt,
	}
}

// ToItemListResponse converts a slice of domain Items to response DTOs.
func ToItemListResponse(items []domain.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
