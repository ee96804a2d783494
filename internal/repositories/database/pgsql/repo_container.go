package pgsql

import (
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	itemRepo := newPgxItemRepository(dbPool)
	claimRepo := newPgxClaimRepository(dbPool)
	otpRepo := newPgxOtpRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		ItemRepo:         itemRepo,
		ClaimRepo:        claimRepo,
		OtpRepo:          otpRepo,
		NotificationRepo: notificationRepo,
	}
}
