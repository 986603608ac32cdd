package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"daily-three/internal/auth"
	repo "daily-three/internal/auth/repository"
)

// CreateLoginCode stores a hashed code with zero attempts.
func (r *implRepository) CreateLoginCode(ctx context.Context, opt repo.CreateLoginCodeOptions) (auth.LoginCode, error) {
	code := auth.LoginCode{
		ID:        uuid.NewString(),
		Email:     opt.Email,
		CodeHash:  opt.CodeHash,
		ExpiresAt: opt.ExpiresAt,
		CreatedAt: opt.At,
	}

	query := r.rebind(`
		INSERT INTO login_codes (id, email, code_hash, attempts, expires_at, created_at)
		VALUES (?, ?, ?, 0, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query,
		code.ID, code.Email, code.CodeHash, toMillis(code.ExpiresAt), toMillis(code.CreatedAt),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLoginCode"), err)
		return auth.LoginCode{}, repo.ErrFailedToInsert
	}
	return code, nil
}

// GetLatestLoginCode returns the newest unconsumed code for email.
func (r *implRepository) GetLatestLoginCode(ctx context.Context, email string) (auth.LoginCode, error) {
	query := r.rebind(`
		SELECT id, email, code_hash, attempts, expires_at, created_at
		FROM login_codes
		WHERE email = ? AND consumed_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`)

	var (
		code                 auth.LoginCode
		expiresAt, createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&code.ID, &code.Email, &code.CodeHash, &code.Attempts, &expiresAt, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.LoginCode{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLatestLoginCode"), err)
		return auth.LoginCode{}, repo.ErrFailedToGet
	}
	code.ExpiresAt = fromMillis(expiresAt)
	code.CreatedAt = fromMillis(createdAt)
	return code, nil
}

// CountLoginCodes counts codes created for an email since a point in time.
func (r *implRepository) CountLoginCodes(ctx context.Context, opt repo.CountLoginCodesOptions) (int, error) {
	query := r.rebind(`SELECT COUNT(*) FROM login_codes WHERE email = ? AND created_at >= ?`)

	var count int
	if err := r.db.QueryRowContext(ctx, query, opt.Email, toMillis(opt.Since)).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountLoginCodes"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

// IncrementAttempts records a failed verification and returns the new count.
func (r *implRepository) IncrementAttempts(ctx context.Context, id string) (int, error) {
	query := r.rebind(`UPDATE login_codes SET attempts = attempts + 1 WHERE id = ? RETURNING attempts`)

	var attempts int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&attempts); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementAttempts"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return attempts, nil
}

// ConsumeLoginCode marks a code as used so it cannot be verified again.
func (r *implRepository) ConsumeLoginCode(ctx context.Context, id string, at time.Time) error {
	query := r.rebind(`UPDATE login_codes SET consumed_at = ? WHERE id = ? AND consumed_at IS NULL`)
	if _, err := r.db.ExecContext(ctx, query, toMillis(at), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ConsumeLoginCode"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ExpireLoginCode makes a code expire at the given time.
func (r *implRepository) ExpireLoginCode(ctx context.Context, id string, at time.Time) error {
	query := r.rebind(`UPDATE login_codes SET expires_at = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, toMillis(at), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExpireLoginCode"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
