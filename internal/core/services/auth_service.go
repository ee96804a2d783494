package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/FoundlyHQ/foundly-backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const minPasswordLength = 6

// authService implements email/password authentication.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
	otpRepo  portsrepo.OtpRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, otpRepo portsrepo.OtpRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		otpRepo:  otpRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Signup(ctx context.Context, name string, email string, password string) (*portssvc.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := s.userRepo.CreateUser(ctx, domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: &hash,
		Name:         name,
		LoginType:    domain.LoginTypeEmail,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &portssvc.AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email string, password string) (*portssvc.AuthResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	// Accounts provisioned via OTP or Google have no password to check.
	if user.PasswordHash == nil {
		logger.Warn("Password login attempted on passwordless account", "login_type", string(user.LoginType))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &portssvc.AuthResult{User: user, Token: token}, nil
}

func (s *authService) CheckEmail(ctx context.Context, email string) (bool, domain.LoginType, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, user.LoginType, nil
}

func (s *authService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	otp, err := s.otpRepo.FindValidOtp(ctx, email, code, domain.OtpPurposePasswordReset)
	if err != nil {
		return err
	}
	if err := s.otpRepo.MarkOtpUsed(ctx, otp.OtpID); err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePasswordHash(ctx, user.UserID, hash)
}

// googleOAuthService implements the Google OAuth login flow.
type googleOAuthService struct {
	cfg          *config.Config
	userRepo     portsrepo.UserRepository
	stateRepo    portsrepo.OAuthStateRepository
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, stateRepo portsrepo.OAuthStateRepository) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg:       cfg,
		userRepo:  userRepo,
		stateRepo: stateRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) IsConfigured() bool {
	return s.cfg.GoogleClientID != "" && s.cfg.GoogleClientSecret != "" && s.cfg.GoogleRedirectURL != ""
}

func (s *googleOAuthService) GetAuthURL(ctx context.Context) (string, error) {
	if !s.IsConfigured() {
		return "", fmt.Errorf("%w: google oauth is not configured", apperrors.ErrValidation)
	}

	// 16 random bytes -> 32 char hex string used as the CSRF token
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	if err := s.stateRepo.SaveState(ctx, state, s.cfg.OAuthStateTTL); err != nil {
		return "", err
	}
	return s.oauth2Config.AuthCodeURL(state), nil
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, state string, code string) (*portssvc.AuthResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.stateRepo.ConsumeState(ctx, state); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid or expired oauth state", apperrors.ErrValidation)
		}
		return nil, err
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response missing id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	info := domain.GoogleUserInfo{
		ID:    payload.Subject,
		Email: claimString(payload, "email"),
		Name:  claimString(payload, "name"),
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.VerifiedEmail = verified
	}
	if info.Email == "" {
		return nil, errors.New("google ID token missing email claim")
	}

	user, err := s.upsertGoogleUser(ctx, info)
	if err != nil {
		return nil, err
	}
	logger.Info("Google login", "user_id", user.UserID)

	jwtToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.OAuthTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &portssvc.AuthResult{User: user, Token: jwtToken}, nil
}

// upsertGoogleUser links the Google identity to an existing account with the
// same email, or creates a fresh google-type account.
func (s *googleOAuthService) upsertGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		if user.GoogleID == nil {
			user.GoogleID = &info.ID
			user.LoginType = domain.LoginTypeGoogle
			return s.userRepo.UpdateUser(ctx, *user)
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = utils.NameFromEmail(info.Email)
	}
	now := time.Now()
	return s.userRepo.CreateUser(ctx, domain.User{
		UserID:    uuid.NewString(),
		Email:     info.Email,
		Name:      name,
		LoginType: domain.LoginTypeGoogle,
		GoogleID:  &info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	})
}

func claimString(payload *idtoken.Payload, key string) string {
	v, _ := payload.Claims[key].(string)
	return v
}
