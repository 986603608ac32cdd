package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"daily-three/internal/auth"
	repo "daily-three/internal/auth/repository"
)

// UpsertUser creates the user for an email or refreshes its last login time.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (auth.User, error) {
	query := r.rebind(`
		INSERT INTO users (id, email, created_at, last_login_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET last_login_at = excluded.last_login_at
		RETURNING id, email, created_at, last_login_at`)

	at := toMillis(opt.At)
	var (
		user              auth.User
		createdAt, lastAt int64
	)
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Email, at, at).Scan(
		&user.ID, &user.Email, &createdAt, &lastAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	user.CreatedAt = fromMillis(createdAt)
	user.LastLoginAt = fromMillis(lastAt)
	return user, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		return auth.User{}, nil
	}

	query := r.rebind(fmt.Sprintf(
		`SELECT id, email, created_at, last_login_at FROM users WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	))

	var (
		user              auth.User
		createdAt, lastAt int64
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Email, &createdAt, &lastAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	user.CreatedAt = fromMillis(createdAt)
	user.LastLoginAt = fromMillis(lastAt)
	return user, nil
}
