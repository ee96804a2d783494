package dto

// SignupRequest defines the payload for email/password registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines the payload for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendOtpRequest defines the payload for requesting a login code.
type SendOtpRequest struct {
	Email    string `json:"email" binding:"required"`
	IsSignup bool   `json:"isSignup"`
}

// VerifyOtpRequest defines the payload for redeeming a login code.
type VerifyOtpRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Otp            string `json:"otp" binding:"required,len=6,numeric"`
	Name           string `json:"name"`
	RememberMe     bool   `json:"rememberMe"`
	IsSignup       bool   `json:"isSignup"`
	IsAutoRegister bool   `json:"isAutoRegister"`
}

// CheckEmailRequest defines the payload for checking account existence.
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckEmailResponse reports whether an account exists and how it signs in.
type CheckEmailResponse struct {
	Exists    bool   `json:"exists"`
	LoginType string `json:"loginType,omitempty"`
}

// ForgotPasswordRequest defines the payload for requesting a reset code.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest defines the payload for completing a password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Otp         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse is the success body for authentication endpoints.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// GoogleURLResponse carries the Google consent URL for the frontend popup.
type GoogleURLResponse struct {
	URL string `json:"url"`
}

// GoogleStatusResponse reports whether Google login is available.
type GoogleStatusResponse struct {
	Enabled bool `json:"enabled"`
}
