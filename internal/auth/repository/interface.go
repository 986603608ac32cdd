package repository

import (
	"context"
	"time"

	"daily-three/internal/auth"
)

// Repository is the composed interface for the auth data store.
type Repository interface {
	UserRepository
	LoginCodeRepository
	Migrate(ctx context.Context) error
}

// UserRepository defines data access methods for the User entity.
type UserRepository interface {
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (auth.User, error)
	// GetOneUser returns a zero User when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
}

// LoginCodeRepository defines data access methods for the LoginCode entity.
type LoginCodeRepository interface {
	CreateLoginCode(ctx context.Context, opt CreateLoginCodeOptions) (auth.LoginCode, error)
	// GetLatestLoginCode returns the newest unconsumed code of an email, or a zero LoginCode.
	GetLatestLoginCode(ctx context.Context, email string) (auth.LoginCode, error)
	CountLoginCodes(ctx context.Context, opt CountLoginCodesOptions) (int, error)
	IncrementAttempts(ctx context.Context, id string) (int, error)
	ConsumeLoginCode(ctx context.Context, id string, at time.Time) error
	ExpireLoginCode(ctx context.Context, id string, at time.Time) error
}
