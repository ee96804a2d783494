package handlers

import (
	"net/http"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests for notification preferences.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(notificationService portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// registerNotificationRoutes registers the notification preference routes.
func registerNotificationRoutes(r *gin.Engine, cfg *config.Config, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := r.Group("/api/notifications", authRequired(cfg))
	{
		notifications.GET("/preferences", h.getPreferences)
		notifications.POST("/preferences", h.updatePreferences)
	}
}

// getPreferences godoc
// @Summary Get the caller's notification preferences
// @Description Returns the stored flags, or all-true defaults when none are saved.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.NotificationPreferencesResponse
// @Security BearerAuth
// @Router /notifications/preferences [get]
func (h *notificationHandler) getPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	pref, err := h.notificationService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationPreferencesResponse(pref))
}

// updatePreferences godoc
// @Summary Save the caller's notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param preferences body dto.NotificationPreferencesRequest true "Opt-in flags"
// @Success 200 {object} dto.NotificationPreferencesResponse
// @Failure 400 {object} MessageResponse
// @Security BearerAuth
// @Router /notifications/preferences [post]
func (h *notificationHandler) updatePreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.NotificationPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All three preference flags are required"})
		return
	}

	pref, err := h.notificationService.UpdatePreferences(c.Request.Context(), domain.NotificationPreference{
		UserID:             userID,
		NotifyLostItems:    *req.NotifyLostItems,
		NotifyFoundItems:   *req.NotifyFoundItems,
		NotifyClaimUpdates: *req.NotifyClaimUpdates,
	})
	if err != nil {
		respondError(c, err, "Failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationPreferencesResponse(pref))
}
