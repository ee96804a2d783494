package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/FoundlyHQ/foundly-backend/internal/models"
	"github.com/FoundlyHQ/foundly-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxItemRepository struct {
	db *pgxpool.Pool
}

func newPgxItemRepository(db *pgxpool.Pool) portsrepo.ItemRepository {
	return &PgxItemRepository{db: db}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepository
var _ portsrepo.ItemRepository = (*PgxItemRepository)(nil)

const itemColumns = `item_id, user_id, title, description, item_type, category, location, item_date,
	contact_email, contact_phone, status, resolved_by_user_id, accepted_claim_id, resolved_at,
	created_at, last_updated_at`

func scanItem(row pgx.Row) (*models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.ItemType,
		&m.Category,
		&m.Location,
		&m.ItemDate,
		&m.ContactEmail,
		&m.ContactPhone,
		&m.Status,
		&m.ResolvedByUserID,
		&m.AcceptedClaimID,
		&m.ResolvedAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxItemRepository) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (item_id, user_id, title, description, item_type, category, location, item_date,
			contact_email, contact_phone, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + itemColumns + `;
	`
	created, err := scanItem(r.db.QueryRow(ctx, query,
		m.ItemID,
		m.UserID,
		m.Title,
		m.Description,
		m.ItemType,
		m.Category,
		m.Location,
		m.ItemDate,
		m.ContactEmail,
		m.ContactPhone,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	domainItem := mapping.ToDomainItem(*created)
	return &domainItem, nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`
	m, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}
	domainItem := mapping.ToDomainItem(*m)
	return &domainItem, nil
}

func (r *PgxItemRepository) ListItems(ctx context.Context, filter portsrepo.ItemListFilter) ([]domain.Item, error) {
	var conditions []string
	var args []any

	addArg := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.ItemType != "" {
		addArg("item_type = ?", string(filter.ItemType))
	}
	if filter.Status != "" {
		addArg("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		addArg("category = ?", filter.Category)
	}
	if filter.UserID != "" {
		addArg("user_id = ?", filter.UserID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(title ILIKE $"+n+" OR description ILIKE $"+n+" OR location ILIKE $"+n+")")
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var ms []models.Item
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return mapping.ToDomainItemSlice(ms), nil
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	m := mapping.ToModelItem(item)
	query := `
		UPDATE items
		SET title = $2, description = $3, category = $4, location = $5, item_date = $6,
			contact_email = $7, contact_phone = $8, last_updated_at = $9
		WHERE item_id = $1
		RETURNING ` + itemColumns + `;
	`
	updated, err := scanItem(r.db.QueryRow(ctx, query,
		m.ItemID,
		m.Title,
		m.Description,
		m.Category,
		m.Location,
		m.ItemDate,
		m.ContactEmail,
		m.ContactPhone,
		time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	domainItem := mapping.ToDomainItem(*updated)
	return &domainItem, nil
}

func (r *PgxItemRepository) UpdateItemStatus(ctx context.Context, itemID string, status domain.ItemStatus) (*domain.Item, error) {
	query := `
		UPDATE items
		SET status = $2, last_updated_at = $3
		WHERE item_id = $1
		RETURNING ` + itemColumns + `;
	`
	updated, err := scanItem(r.db.QueryRow(ctx, query, itemID, string(status), time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of item %s: %w", itemID, err)
	}
	domainItem := mapping.ToDomainItem(*updated)
	return &domainItem, nil
}

func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	// Claims go with it via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
