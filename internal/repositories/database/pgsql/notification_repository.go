package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
	"github.com/FoundlyHQ/foundly-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{db: db}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepository
var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error) {
	query := `
		SELECT user_id, notify_lost_items, notify_found_items, notify_claim_updates, last_updated_at
		FROM notification_preferences
		WHERE user_id = $1;
	`
	var m models.NotificationPreference
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.NotifyLostItems,
		&m.NotifyFoundItems,
		&m.NotifyClaimUpdates,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			pref := domain.DefaultNotificationPreference(userID)
			return &pref, nil
		}
		return nil, fmt.Errorf("failed to get notification preferences for user %s: %w", userID, err)
	}
	pref := mapping.ToDomainNotificationPreference(m)
	return &pref, nil
}

func (r *PgxNotificationRepository) UpsertPreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error) {
	query := `
		INSERT INTO notification_preferences (user_id, notify_lost_items, notify_found_items, notify_claim_updates, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			notify_lost_items = EXCLUDED.notify_lost_items,
			notify_found_items = EXCLUDED.notify_found_items,
			notify_claim_updates = EXCLUDED.notify_claim_updates,
			last_updated_at = EXCLUDED.last_updated_at
		RETURNING user_id, notify_lost_items, notify_found_items, notify_claim_updates, last_updated_at;
	`
	var m models.NotificationPreference
	err := r.db.QueryRow(ctx, query,
		pref.UserID,
		pref.NotifyLostItems,
		pref.NotifyFoundItems,
		pref.NotifyClaimUpdates,
		time.Now(),
	).Scan(
		&m.UserID,
		&m.NotifyLostItems,
		&m.NotifyFoundItems,
		&m.NotifyClaimUpdates,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert notification preferences for user %s: %w", pref.UserID, err)
	}
	saved := mapping.ToDomainNotificationPreference(m)
	return &saved, nil
}

// ListNewItemRecipients treats users without a saved row as opted in, matching
// the defaults GetPreferences reports for them.
func (r *PgxNotificationRepository) ListNewItemRecipients(ctx context.Context, excludeUserID string) ([]string, error) {
	query := `
		SELECT u.email
		FROM users u
		LEFT JOIN notification_preferences p ON p.user_id = u.user_id
		WHERE u.user_id <> $1
		  AND COALESCE(p.notify_lost_items OR p.notify_found_items, TRUE);
	`
	rows, err := r.db.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification recipients: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan recipient row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipient rows: %w", err)
	}
	return emails, nil
}
