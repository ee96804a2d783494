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

type PgxOtpRepository struct {
	BaseRepository
}

func newPgxOtpRepository(db *pgxpool.Pool) portsrepo.OtpRepository {
	return &PgxOtpRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxOtpRepository implements portsrepo.OtpRepository
var _ portsrepo.OtpRepository = (*PgxOtpRepository)(nil)

const otpColumns = `otp_id, email, user_id, otp, purpose, expires_at, used, created_at`

func scanOtp(row pgx.Row) (*models.OtpVerification, error) {
	var m models.OtpVerification
	err := row.Scan(
		&m.OtpID,
		&m.Email,
		&m.UserID,
		&m.Otp,
		&m.Purpose,
		&m.ExpiresAt,
		&m.Used,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ReplaceOtp invalidates any previous codes for the email+purpose pair before
// storing the new one, so only the latest code sent is ever valid.
func (r *PgxOtpRepository) ReplaceOtp(ctx context.Context, otp domain.OtpVerification) (*domain.OtpVerification, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	deleteQuery := `DELETE FROM otp_verifications WHERE email = lower($1) AND purpose = $2;`
	if _, err := tx.Exec(ctx, deleteQuery, otp.Email, string(otp.Purpose)); err != nil {
		return nil, fmt.Errorf("failed to delete prior OTPs: %w", err)
	}

	insertQuery := `
		INSERT INTO otp_verifications (otp_id, email, user_id, otp, purpose, expires_at, used, created_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, FALSE, $7)
		RETURNING ` + otpColumns + `;
	`
	created, err := scanOtp(tx.QueryRow(ctx, insertQuery,
		otp.OtpID,
		otp.Email,
		otp.UserID,
		otp.Otp,
		string(otp.Purpose),
		otp.ExpiresAt,
		otp.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainOtp := mapping.ToDomainOtpVerification(*created)
	return &domainOtp, nil
}

func (r *PgxOtpRepository) FindValidOtp(ctx context.Context, email string, code string, purpose domain.OtpPurpose) (*domain.OtpVerification, error) {
	query := `
		SELECT ` + otpColumns + `
		FROM otp_verifications
		WHERE email = lower($1) AND otp = $2 AND purpose = $3 AND used = FALSE AND expires_at > $4
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanOtp(r.Pool.QueryRow(ctx, query, email, code, string(purpose), time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidOrExpiredOTP
		}
		return nil, fmt.Errorf("failed to look up OTP: %w", err)
	}
	domainOtp := mapping.ToDomainOtpVerification(*m)
	return &domainOtp, nil
}

func (r *PgxOtpRepository) MarkOtpUsed(ctx context.Context, otpID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE otp_verifications SET used = TRUE WHERE otp_id = $1;`, otpID)
	if err != nil {
		return fmt.Errorf("failed to mark OTP used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOtpRepository) DeleteExpiredOtps(ctx context.Context) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM otp_verifications WHERE used = TRUE OR expires_at <= $1;`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired OTPs: %w", err)
	}
	return tag.RowsAffected(), nil
}
