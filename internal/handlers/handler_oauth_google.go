package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles the Google OAuth popup login flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
}

func newGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{googleOAuthService: googleOAuthService}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes on the auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, googleOAuthService portssvc.GoogleOAuthSvcFacade) {
	h := newGoogleOAuthHandler(googleOAuthService)

	auth.POST("/google-url", h.googleURL)
	auth.GET("/google-callback", h.googleCallback)
	auth.GET("/google-status", h.googleStatus)
}

// googleURL godoc
// @Summary Start a Google login
// @Description Returns the Google consent URL with a fresh single-use state token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleURLResponse
// @Failure 400 {object} MessageResponse
// @Router /auth/google-url [post]
func (h *googleOAuthHandler) googleURL(c *gin.Context) {
	url, err := h.googleOAuthService.GetAuthURL(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to start Google login")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleURLResponse{URL: url})
}

// googleCallback godoc
// @Summary Complete a Google login
// @Description Validates state, signs the user in and returns a popup page that
// posts the token back to the opener window.
// @Tags auth
// @Produce html
// @Param code query string true "Authorization code"
// @Param state query string true "State token"
// @Success 200 {string} string "HTML popup page"
// @Failure 400 {object} MessageResponse
// @Router /auth/google-callback [get]
func (h *googleOAuthHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code or state parameter"})
		return
	}

	result, err := h.googleOAuthService.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		logger.Warn("Google callback failed", "error", err)
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(popupErrorPage("Google sign-in failed. Please close this window and try again.")))
		return
	}

	payload, err := json.Marshal(gin.H{
		"type":  "google-auth-success",
		"token": result.Token,
		"user":  dto.ToUserResponse(result.User),
	})
	if err != nil {
		respondError(c, err, "Failed to complete Google login")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(popupSuccessPage(payload)))
}

// googleStatus godoc
// @Summary Report whether Google login is configured
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleStatusResponse
// @Router /auth/google-status [get]
func (h *googleOAuthHandler) googleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GoogleStatusResponse{Enabled: h.googleOAuthService.IsConfigured()})
}

// popupSuccessPage posts the auth payload to the opener window and closes the popup.
func popupSuccessPage(payload []byte) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Signing in...</title></head>
<body>
<p>Signing you in...</p>
<script>
	if (window.opener) {
		window.opener.postMessage(%s, "*");
	}
	window.close();
</script>
</body>
</html>`, payload)
}

func popupErrorPage(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Sign-in failed</title></head>
<body>
<p>%s</p>
<script>
	if (window.opener) {
		window.opener.postMessage({ type: "google-auth-error" }, "*");
	}
</script>
</body>
</html>`, html.EscapeString(message))
}
