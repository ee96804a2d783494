package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
	"github.com/FoundlyHQ/foundly-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClaimRepository struct {
	BaseRepository
}

func newPgxClaimRepository(db *pgxpool.Pool) portsrepo.ClaimRepository {
	return &PgxClaimRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxClaimRepository implements portsrepo.ClaimRepository
var _ portsrepo.ClaimRepository = (*PgxClaimRepository)(nil)

const claimColumns = `claim_id, original_item_id, claimed_by_user_id, description, location,
	contact_email, contact_phone, status, created_at, last_updated_at`

func scanClaim(row pgx.Row) (*models.FoundClaim, error) {
	var m models.FoundClaim
	err := row.Scan(
		&m.ClaimID,
		&m.OriginalItemID,
		&m.ClaimedByUserID,
		&m.Description,
		&m.Location,
		&m.ContactEmail,
		&m.ContactPhone,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxClaimRepository) CreateClaim(ctx context.Context, claim domain.FoundClaim) (*domain.FoundClaim, error) {
	m := mapping.ToModelFoundClaim(claim)
	query := `
		INSERT INTO found_claims (claim_id, original_item_id, claimed_by_user_id, description, location,
			contact_email, contact_phone, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + claimColumns + `;
	`
	created, err := scanClaim(r.Pool.QueryRow(ctx, query,
		m.ClaimID,
		m.OriginalItemID,
		m.ClaimedByUserID,
		m.Description,
		m.Location,
		m.ContactEmail,
		m.ContactPhone,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	domainClaim := mapping.ToDomainFoundClaim(*created)
	return &domainClaim, nil
}

func (r *PgxClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.FoundClaim, error) {
	query := `SELECT ` + claimColumns + ` FROM found_claims WHERE claim_id = $1;`
	m, err := scanClaim(r.Pool.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim by ID %s: %w", claimID, err)
	}
	domainClaim := mapping.ToDomainFoundClaim(*m)
	return &domainClaim, nil
}

func (r *PgxClaimRepository) ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error) {
	query := `
		SELECT c.claim_id, c.original_item_id, c.claimed_by_user_id, c.description, c.location,
			c.contact_email, c.contact_phone, c.status, c.created_at, c.last_updated_at,
			u.name, u.email
		FROM found_claims c
		JOIN users u ON u.user_id = c.claimed_by_user_id
		WHERE c.original_item_id = $1
		ORDER BY c.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims for item %s: %w", itemID, err)
	}
	defer rows.Close()

	var claims []domain.ClaimWithClaimant
	for rows.Next() {
		var m models.FoundClaim
		var claimantName, claimantEmail string
		err := rows.Scan(
			&m.ClaimID,
			&m.OriginalItemID,
			&m.ClaimedByUserID,
			&m.Description,
			&m.Location,
			&m.ContactEmail,
			&m.ContactPhone,
			&m.Status,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&claimantName,
			&claimantEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim row: %w", err)
		}
		claims = append(claims, domain.ClaimWithClaimant{
			FoundClaim:     mapping.ToDomainFoundClaim(m),
			ClaimantName:   claimantName,
			ClaimantEmail:  claimantEmail,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claim rows: %w", err)
	}
	return claims, nil
}

func (r *PgxClaimRepository) ListClaimsByUser(ctx context.Context, userID string) ([]domain.ClaimWithItem, error) {
	query := `
		SELECT c.claim_id, c.original_item_id, c.claimed_by_user_id, c.description, c.location,
			c.contact_email, c.contact_phone, c.status, c.created_at, c.last_updated_at,
			i.title, i.description, i.category
		FROM found_claims c
		JOIN items i ON i.item_id = c.original_item_id
		WHERE c.claimed_by_user_id = $1
		ORDER BY c.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims by user %s: %w", userID, err)
	}
	defer rows.Close()

	var claims []domain.ClaimWithItem
	for rows.Next() {
		var m models.FoundClaim
		var itemTitle, itemDescription, itemCategory string
		err := rows.Scan(
			&m.ClaimID,
			&m.OriginalItemID,
			&m.ClaimedByUserID,
			&m.Description,
			&m.Location,
			&m.ContactEmail,
			&m.ContactPhone,
			&m.Status,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&itemTitle,
			&itemDescription,
			&itemCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim row: %w", err)
		}
		claims = append(claims, domain.ClaimWithItem{
			FoundClaim:      mapping.ToDomainFoundClaim(m),
			ItemTitle:       itemTitle,
			ItemDescription: itemDescription,
			ItemCategory:    itemCategory,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claim rows: %w", err)
	}
	return claims, nil
}

func (r *PgxClaimRepository) HasPendingClaim(ctx context.Context, itemID string, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM found_claims
			WHERE original_item_id = $1 AND claimed_by_user_id = $2 AND status = 'pending'
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, itemID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending claim: %w", err)
	}
	return exists, nil
}

func (r *PgxClaimRepository) UpdateClaimStatus(ctx context.Context, claimID string, status domain.ClaimStatus) (*domain.FoundClaim, error) {
	query := `
		UPDATE found_claims
		SET status = $2, last_updated_at = $3
		WHERE claim_id = $1
		RETURNING ` + claimColumns + `;
	`
	updated, err := scanClaim(r.Pool.QueryRow(ctx, query, claimID, string(status), time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of claim %s: %w", claimID, err)
	}
	domainClaim := mapping.ToDomainFoundClaim(*updated)
	return &domainClaim, nil
}

// AcceptClaim performs the accept flow in a single transaction so a crash or a
// concurrent accept cannot leave the reward, the claim and the item out of step.
func (r *PgxClaimRepository) AcceptClaim(ctx context.Context, claim domain.FoundClaim, rewardPoints int) (*domain.FoundClaim, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()

	// Resolving the item first: the status predicate is the guard against a
	// second accept racing this one.
	resolveQuery := `
		UPDATE items
		SET status = 'resolved', resolved_by_user_id = $2, accepted_claim_id = $3, resolved_at = $4, last_updated_at = $4
		WHERE item_id = $1 AND status <> 'resolved';
	`
	tag, err := tx.Exec(ctx, resolveQuery, claim.OriginalItemID, claim.ClaimedByUserID, claim.ClaimID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", claim.OriginalItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrConflict
	}

	acceptQuery := `
		UPDATE found_claims
		SET status = 'accepted', last_updated_at = $2
		WHERE claim_id = $1
		RETURNING ` + claimColumns + `;
	`
	accepted, err := scanClaim(tx.QueryRow(ctx, acceptQuery, claim.ClaimID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to accept claim %s: %w", claim.ClaimID, err)
	}

	rewardQuery := `UPDATE users SET points = points + $2, last_updated_at = $3 WHERE user_id = $1;`
	if _, err := tx.Exec(ctx, rewardQuery, claim.ClaimedByUserID, rewardPoints, now); err != nil {
		return nil, fmt.Errorf("failed to reward claimant %s: %w", claim.ClaimedByUserID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainClaim := mapping.ToDomainFoundClaim(*accepted)
	return &domainClaim, nil
}
