package usecase

import (
	"time"

	"daily-three/internal/auth"
	"daily-three/internal/auth/repository"
	"daily-three/pkg/datemath"
	"daily-three/pkg/log"
	"daily-three/pkg/mailer"
	"daily-three/pkg/scope"
)

// Config holds the login code policy.
type Config struct {
	CodeTTL      time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
	MaxResends   int
	Now          datemath.Clock
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	mailer mailer.Mailer
	tokens scope.Manager
	cfg    Config
	// hashCost is lowered in tests.
	hashCost int
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, m mailer.Mailer, tokens scope.Manager, cfg Config) *implUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 10 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.ResendWindow <= 0 {
		cfg.ResendWindow = 10 * time.Minute
	}
	if cfg.MaxResends <= 0 {
		cfg.MaxResends = 3
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		mailer:   m,
		tokens:   tokens,
		cfg:      cfg,
		hashCost: defaultHashCost,
	}
}

var _ auth.UseCase = (*implUseCase)(nil)
