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
)

// otpService implements email one-time-password login and cleanup.
type otpService struct {
	cfg      *config.Config
	otpRepo  portsrepo.OtpRepository
	userRepo portsrepo.UserRepository
	mailer   portssvc.MailerSvcFacade
}

// NewOtpService creates a new instance of otpService.
func NewOtpService(cfg *config.Config, otpRepo portsrepo.OtpRepository, userRepo portsrepo.UserRepository, mailer portssvc.MailerSvcFacade) portssvc.OtpSvcFacade {
	return &otpService{
		cfg:      cfg,
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

var _ portssvc.OtpSvcFacade = (*otpService)(nil)

func (s *otpService) SendLoginOtp(ctx context.Context, email string, isSignup bool) error {
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if user != nil {
		if isSignup {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		if user.LoginType == domain.LoginTypeGoogle {
			return fmt.Errorf("%w: this account uses Google sign-in", apperrors.ErrValidation)
		}
	}

	var userID *string
	if user != nil {
		userID = &user.UserID
	}
	return s.generateAndSend(ctx, email, userID, domain.OtpPurposeLogin, s.cfg.OtpLoginExpiry)
}

func (s *otpService) SendPasswordResetOtp(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.generateAndSend(ctx, email, &user.UserID, domain.OtpPurposePasswordReset, s.cfg.OtpPasswordResetExpiry)
}

// generateAndSend creates a fresh code, replaces any prior code for the
// email+purpose pair, and emails it. An email failure surfaces to the caller
// since a code the user never received is useless.
func (s *otpService) generateAndSend(ctx context.Context, email string, userID *string, purpose domain.OtpPurpose, expiry time.Duration) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	otp := domain.OtpVerification{
		OtpID:     uuid.NewString(),
		Email:     email,
		UserID:    userID,
		Otp:       code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(expiry),
		CreatedAt: time.Now(),
	}
	if _, err := s.otpRepo.ReplaceOtp(ctx, otp); err != nil {
		return err
	}

	if purpose == domain.OtpPurposePasswordReset {
		err = s.mailer.SendPasswordResetEmail(ctx, email, code)
	} else {
		err = s.mailer.SendOtpEmail(ctx, email, code)
	}
	if err != nil {
		logger.Error("Failed to send OTP email", "purpose", string(purpose), "error", err)
		return err
	}

	logger.Info("OTP sent", "purpose", string(purpose))
	return nil
}

func (s *otpService) VerifyOtp(ctx context.Context, params portssvc.VerifyOtpParams) (*portssvc.AuthResult, error) {
	otp, err := s.otpRepo.FindValidOtp(ctx, params.Email, params.Code, domain.OtpPurposeLogin)
	if err != nil {
		return nil, err
	}
	if err := s.otpRepo.MarkOtpUsed(ctx, otp.OtpID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, params.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		if !params.IsSignup && !params.IsAutoRegister {
			return nil, apperrors.ErrNotFound
		}
		user, err = s.provisionUser(ctx, params.Email, params.Name)
	}
	if err != nil {
		return nil, err
	}

	expiry := s.cfg.OtpTokenExpiryDuration
	if params.RememberMe {
		expiry = s.cfg.OtpRememberMeExpiryDuration
	}
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, expiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &portssvc.AuthResult{User: user, Token: token}, nil
}

// provisionUser creates a passwordless email account during OTP verification.
func (s *otpService) provisionUser(ctx context.Context, email string, name string) (*domain.User, error) {
	if name == "" {
		name = utils.NameFromEmail(email)
	}
	now := time.Now()
	return s.userRepo.CreateUser(ctx, domain.User{
		UserID:    uuid.NewString(),
		Email:     email,
		Name:      name,
		LoginType: domain.LoginTypeEmail,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	})
}

func (s *otpService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.otpRepo.DeleteExpiredOtps(ctx)
}
