package usecase

import (
	"context"
	"time"

	"daily-three/internal/task"
	"daily-three/internal/task/policy"
	"daily-three/pkg/datemath"
	"daily-three/pkg/log"
)

const defaultTickInterval = time.Minute

// Config holds the tunables of the task UseCase.
type Config struct {
	DefaultTimezone string
	TickInterval    time.Duration
	Now             datemath.Clock
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l            log.Logger
	store        task.Store
	gate         *policy.Gate
	now          datemath.Clock
	defaultCal   *datemath.Calendar
	tickInterval time.Duration
}

// New creates a new task UseCase implementation.
func New(l log.Logger, store task.Store, gate *policy.Gate, cfg Config) *implUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	defaultCal, err := datemath.NewCalendar(cfg.DefaultTimezone)
	if err != nil {
		l.Warnf(context.Background(), "task.usecase.New: invalid default timezone %q, using UTC: %v", cfg.DefaultTimezone, err)
		defaultCal = datemath.NewCalendarIn(time.UTC)
	}

	return &implUseCase{
		l:            l,
		store:        store,
		gate:         gate,
		now:          cfg.Now,
		defaultCal:   defaultCal,
		tickInterval: cfg.TickInterval,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
