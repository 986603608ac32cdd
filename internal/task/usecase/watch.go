package usecase

import (
	"context"
	"time"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/policy"
	"daily-three/pkg/datemath"
)

const watchBuffer = 8

// Watch subscribes to the owner's tasks. Each snapshot is emitted as a board,
// followed by a celebrate event on the last completion. A ticker re-evaluates
// the theme and the daily reset, which also runs after every snapshot.
func (uc *implUseCase) Watch(ctx context.Context, sc model.Scope, input task.WatchInput) (<-chan task.Event, error) {
	cal := uc.calendar(ctx, input.Client)
	snaps := uc.store.Subscribe(ctx, sc.UserID)
	events := make(chan task.Event, watchBuffer)

	go uc.watch(ctx, sc.UserID, input.Client, cal, snaps, events)
	return events, nil
}

func (uc *implUseCase) watch(
	ctx context.Context,
	ownerID string,
	client task.ClientContext,
	cal *datemath.Calendar,
	snaps <-chan task.Snapshot,
	events chan<- task.Event,
) {
	defer close(events)

	ticker := time.NewTicker(uc.tickInterval)
	defer ticker.Stop()

	emit := func(ev task.Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var (
		celebration policy.Celebration
		latest      []task.Task
		theme       task.Theme
	)

	for {
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-snaps:
			if !ok {
				return
			}
			if snap.Err != nil {
				if !emit(task.Event{Type: task.EventError, Err: snap.Err}) {
					return
				}
				continue
			}

			now := uc.now()
			latest = snap.Tasks
			board := policy.BuildBoard(latest, now, cal)
			theme = board.Theme
			if !emit(task.Event{Type: task.EventSnapshot, Board: board}) {
				return
			}
			if celebration.Observe(len(board.Incomplete), len(latest)) {
				if !emit(task.Event{Type: task.EventCelebrate}) {
					return
				}
			}
			uc.resetIfDue(ctx, ownerID, client, latest, now, cal)

		case <-ticker.C:
			now := uc.now()
			if next := policy.ThemeFor(cal.Hour(now)); next != theme {
				theme = next
				if !emit(task.Event{Type: task.EventTheme, Theme: theme}) {
					return
				}
			}
			uc.resetIfDue(ctx, ownerID, client, latest, now, cal)
		}
	}
}

// resetIfDue runs the daily reset for a watcher. Its outcome reaches the
// watcher through the subscription, so failures are only logged.
func (uc *implUseCase) resetIfDue(
	ctx context.Context,
	ownerID string,
	client task.ClientContext,
	tasks []task.Task,
	now time.Time,
	cal *datemath.Calendar,
) {
	if _, err := uc.dailyReset(ctx, ownerID, client, tasks, now, cal); err != nil && ctx.Err() == nil {
		uc.l.Warnf(ctx, "uc.watch dailyReset: %v", err)
	}
}
