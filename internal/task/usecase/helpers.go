package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"daily-three/internal/task"
	"daily-three/internal/task/policy"
	"daily-three/internal/task/repository"
	"daily-three/pkg/datemath"
)

// calendar resolves the client's timezone, falling back to the default one.
func (uc *implUseCase) calendar(ctx context.Context, client task.ClientContext) *datemath.Calendar {
	if client.Timezone == "" {
		return uc.defaultCal
	}
	cal, err := datemath.NewCalendar(client.Timezone)
	if err != nil {
		uc.l.Debugf(ctx, "task.usecase.calendar: unknown timezone %q, using default", client.Timezone)
		return uc.defaultCal
	}
	return cal
}

func deviceID(client task.ClientContext) string {
	if client.DeviceID == "" {
		return task.DefaultDeviceID
	}
	return client.DeviceID
}

// normalizeTitle trims the title and checks its length in characters.
func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", task.ErrTitleEmpty
	}
	if utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

func findTask(tasks []task.Task, id string) (task.Task, bool) {
	for _, t := range tasks {
		if t.ID == id && !t.Deleted {
			return t, true
		}
	}
	return task.Task{}, false
}

func positionMutations(updates []policy.PositionUpdate, at time.Time) []task.Mutation {
	muts := make([]task.Mutation, 0, len(updates))
	for _, u := range updates {
		muts = append(muts, task.NewPositionMutation(u.ID, u.Position, at))
	}
	return muts
}

// removalMutations soft deletes ids and compacts what remains of both partitions.
func removalMutations(tasks []task.Task, ids []string, at time.Time) []task.Mutation {
	muts := make([]task.Mutation, 0, len(ids))
	for _, id := range ids {
		muts = append(muts, task.NewSoftDeleteMutation(id, at))
	}

	incomplete, completed := policy.Partition(tasks)
	muts = append(muts, positionMutations(policy.Compact(policy.Without(incomplete, ids...)), at)...)
	muts = append(muts, positionMutations(policy.Compact(policy.Without(completed, ids...)), at)...)
	return muts
}

// commit submits muts and waits for the outcome.
func (uc *implUseCase) commit(ctx context.Context, ownerID string, muts []task.Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	select {
	case err := <-uc.store.Transact(ctx, ownerID, muts):
		switch {
		case errors.Is(err, repository.ErrTargetGone):
			return task.ErrTaskNotFound
		case errors.Is(err, repository.ErrActiveLimit):
			return task.ErrTaskLimitReached
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
