package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// claimHandler handles HTTP requests for found-claims.
type claimHandler struct {
	claimService portssvc.ClaimSvcFacade
}

func newClaimHandler(claimService portssvc.ClaimSvcFacade) *claimHandler {
	return &claimHandler{claimService: claimService}
}

// registerClaimRoutes registers all claim-related routes.
func registerClaimRoutes(r *gin.Engine, cfg *config.Config, claimService portssvc.ClaimSvcFacade) {
	h := newClaimHandler(claimService)
	auth := authRequired(cfg)

	claims := r.Group("/api/found-claims")
	{
		claims.POST("", auth, h.createClaim)
		claims.GET("/item/:itemId", h.listClaimsForItem)
		claims.GET("/user", auth, h.listMyClaims)
		claims.PUT("/:claimId/accept", auth, h.acceptClaim)
		claims.PUT("/:claimId/reject", auth, h.rejectClaim)
	}
}

// createClaim godoc
// @Summary Claim a lost item as found
// @Description Submits a pending claim against a lost item.
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body dto.CreateClaimRequest true "Claim details"
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /found-claims [post]
func (h *claimHandler) createClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Item ID is required"})
		return
	}

	claim, err := h.claimService.CreateClaim(c.Request.Context(), userID, req.ItemID, portssvc.CreateClaimParams{
		Description:  req.Description,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}

	logger.Info("Claim submitted", slog.String("claim_id", claim.ClaimID), slog.String("item_id", claim.OriginalItemID))
	c.JSON(http.StatusCreated, dto.ToClaimResponse(claim))
}

// listClaimsForItem godoc
// @Summary List claims on an item
// @Tags claims
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {array} dto.ClaimWithClaimantResponse
// @Failure 404 {object} MessageResponse
// @Router /found-claims/item/{itemId} [get]
func (h *claimHandler) listClaimsForItem(c *gin.Context) {
	claims, err := h.claimService.ListClaimsForItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimWithClaimantListResponse(claims))
}

// listMyClaims godoc
// @Summary List the caller's claims
// @Tags claims
// @Produce json
// @Success 200 {array} dto.ClaimWithItemResponse
// @Security BearerAuth
// @Router /found-claims/user [get]
func (h *claimHandler) listMyClaims(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	claims, err := h.claimService.ListMyClaims(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list claims")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimWithItemListResponse(claims))
}

// acceptClaim godoc
// @Summary Accept a claim
// @Description Accepts a pending claim, resolves the item and awards the claimant points. Only the item's reporter may accept.
// @Tags claims
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /found-claims/{claimId}/accept [put]
func (h *claimHandler) acceptClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	claim, err := h.claimService.AcceptClaim(c.Request.Context(), userID, c.Param("claimId"))
	if err != nil {
		respondError(c, err, "Claim not found")
		return
	}

	logger.Info("Claim accepted", slog.String("claim_id", claim.ClaimID))
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// rejectClaim godoc
// @Summary Reject a claim
// @Description Rejects a pending claim. The item and its other claims are untouched.
// @Tags claims
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security BearerAuth
// @Router /found-claims/{claimId}/reject [put]
func (h *claimHandler) rejectClaim(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	claim, err := h.claimService.RejectClaim(c.Request.Context(), userID, c.Param("claimId"))
	if err != nil {
		respondError(c, err, "Claim not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}
