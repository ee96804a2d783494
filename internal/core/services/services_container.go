package services

import (
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, stateRepo portsrepo.OAuthStateRepository) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Mailer first since several services depend on it
	container.Mailer = NewEmailService(cfg)

	container.User = NewUserService(repos.UserRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo, container.Mailer)
	container.Item = NewItemService(repos.ItemRepo, container.Notification)
	container.Claim = NewClaimService(repos.ClaimRepo, repos.ItemRepo, container.Notification, cfg.ClaimRewardPoints)

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.OtpRepo)
	container.Otp = NewOtpService(cfg, repos.OtpRepo, repos.UserRepo, container.Mailer)
	container.GoogleOAuth = NewGoogleOAuthService(cfg, repos.UserRepo, stateRepo)

	return container
}
