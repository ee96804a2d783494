package handlers

import (
	"net/http"

	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MessageResponse is the generic {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message"`
}

// authHandler handles HTTP requests for signup, login and OTP flows.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	otpService  portssvc.OtpSvcFacade
}

func newAuthHandler(authService portssvc.AuthSvcFacade, otpService portssvc.OtpSvcFacade) *authHandler {
	return &authHandler{
		authService: authService,
		otpService:  otpService,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Otp)

	// Rate limit: 5 OTP requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
		auth.POST("/send-otp", limitMiddleware, h.sendOtp)
		auth.POST("/verify-otp", h.verifyOtp)
		auth.POST("/check-email", h.checkEmail)
		auth.POST("/password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}

	registerGoogleOAuthRoutes(auth, services.GoogleOAuth)
}

// signup godoc
// @Summary Register with email and password
// @Description Creates an email/password account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} MessageResponse
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Account created successfully",
		Token:   result.Token,
		User:    dto.ToUserResponse(result.User),
	})
}

// login godoc
// @Summary Login with email and password
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} MessageResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    dto.ToUserResponse(result.User),
	})
}

// sendOtp godoc
// @Summary Send a login code
// @Description Emails a 6-digit single-use code to the address. Rate limited per IP.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SendOtpRequest true "Target email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 429 {object} MessageResponse
// @Router /auth/send-otp [post]
func (h *authHandler) sendOtp(c *gin.Context) {
	var req dto.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.otpService.SendLoginOtp(c.Request.Context(), req.Email, req.IsSignup); err != nil {
		respondError(c, err, "Failed to send verification code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// verifyOtp godoc
// @Summary Redeem a login code
// @Description Verifies a 6-digit code and returns a JWT token, creating the account when allowed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOtpRequest true "Email and code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /auth/verify-otp [post]
func (h *authHandler) verifyOtp(c *gin.Context) {
	var req dto.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and a 6-digit code are required"})
		return
	}

	result, err := h.otpService.VerifyOtp(c.Request.Context(), portssvc.VerifyOtpParams{
		Email:          req.Email,
		Code:           req.Otp,
		Name:           req.Name,
		RememberMe:     req.RememberMe,
		IsSignup:       req.IsSignup,
		IsAutoRegister: req.IsAutoRegister,
	})
	if err != nil {
		respondError(c, err, "No account found for this email")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Verification successful",
		Token:   result.Token,
		User:    dto.ToUserResponse(result.User),
	})
}

// checkEmail godoc
// @Summary Check whether an email is registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckEmailRequest true "Email to check"
// @Success 200 {object} dto.CheckEmailResponse
// @Router /auth/check-email [post]
func (h *authHandler) checkEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	exists, loginType, err := h.authService.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to check email")
		return
	}

	c.JSON(http.StatusOK, dto.CheckEmailResponse{
		Exists:    exists,
		LoginType: string(loginType),
	})
}

// forgotPassword godoc
// @Summary Request a password reset code
// @Description Emails a reset code to an existing account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /auth/password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.otpService.SendPasswordResetOtp(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "No account found for this email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent"})
}

// resetPassword godoc
// @Summary Complete a password reset
// @Description Consumes a reset code and sets the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, a 6-digit code and a new password of at least 6 characters are required"})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		respondError(c, err, "No account found for this email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}
