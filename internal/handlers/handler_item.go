package handlers

import (
	"log/slog"
	"net/http"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests for item listings.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(itemService portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: itemService}
}

// registerItemRoutes registers all item-related routes.
func registerItemRoutes(r *gin.Engine, cfg *config.Config, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)
	auth := authRequired(cfg)

	items := r.Group("/api/items")
	{
		items.GET("", h.listItems)
		items.GET("/user", auth, h.listUserItems)
		items.GET("/:id", h.getItem)
		items.POST("", auth, h.createItem)
		items.PUT("/:id", auth, h.updateItem)
		items.DELETE("/:id", auth, h.deleteItem)
		items.PUT("/:id/mark-found", auth, h.markFound)
		items.PUT("/:id/mark-claimed", auth, h.markClaimed)
	}
}

// listItems godoc
// @Summary List items
// @Description Lists items newest first, optionally filtered by type, status, category and a search term.
// @Tags items
// @Produce json
// @Param type query string false "lost or found"
// @Param status query string false "active, found, claimed or resolved"
// @Param category query string false "Category"
// @Param search query string false "Substring match over title, description and location"
// @Success 200 {array} dto.ItemResponse
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), portsrepo.ItemListFilter{
		ItemType: domain.ItemType(params.Type),
		Status:   domain.ItemStatus(params.Status),
		Category: params.Category,
		Search:   params.Search,
	})
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemListResponse(items))
}

// listUserItems godoc
// @Summary List the caller's items
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Security BearerAuth
// @Router /items/user [get]
func (h *itemHandler) listUserItems(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	items, err := h.itemService.ListUserItems(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemListResponse(items))
}

// getItem godoc
// @Summary Get an item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} MessageResponse
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// createItem godoc
// @Summary Report a lost or found item
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} MessageResponse
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and a valid item type are required"})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), userID, portssvc.CreateItemParams{
		Title:        req.Title,
		Description:  req.Description,
		ItemType:     domain.ItemType(req.ItemType),
		Category:     req.Category,
		Location:     req.Location,
		ItemDate:     req.ItemDate,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondError(c, err, "Failed to create item")
		return
	}

	logger.Info("Item reported", slog.String("item_id", item.ItemID), slog.String("item_type", string(item.ItemType)))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Edit an item
// @Description Only the reporter may edit their item.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), userID, c.Param("id"), portssvc.UpdateItemParams{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		ItemDate:     req.ItemDate,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Only the reporter may delete their item. Claims are removed with it.
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// markFound godoc
// @Summary Mark a lost item as found
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Security BearerAuth
// @Router /items/{id}/mark-found [put]
func (h *itemHandler) markFound(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	item, err := h.itemService.MarkItemFound(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// markClaimed godoc
// @Summary Mark a found item as claimed
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Security BearerAuth
// @Router /items/{id}/mark-claimed [put]
func (h *itemHandler) markClaimed(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	item, err := h.itemService.MarkItemClaimed(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
