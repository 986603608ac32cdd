package usecase

import (
	"context"
	"time"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/policy"
)

// UpdateTitle renames a task. An unchanged title submits nothing.
func (uc *implUseCase) UpdateTitle(ctx context.Context, sc model.Scope, input task.UpdateTitleInput) (task.UpdateTitleOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return task.UpdateTitleOutput{}, err
	}

	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTitle Query: %v", err)
		return task.UpdateTitleOutput{}, err
	}
	existing, ok := findTask(tasks, input.ID)
	if !ok {
		return task.UpdateTitleOutput{}, task.ErrTaskNotFound
	}
	if existing.Title == title {
		return task.UpdateTitleOutput{Task: existing}, nil
	}

	now := uc.now()
	if err := uc.commit(ctx, sc.UserID, []task.Mutation{task.NewTitleMutation(existing.ID, title, now)}); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTitle commit: %v", err)
		return task.UpdateTitleOutput{}, err
	}

	existing.Title = title
	existing.UpdatedAt = now
	return task.UpdateTitleOutput{Task: existing, Changed: true}, nil
}

// Toggle flips completion. The task goes to the end of its new partition and
// the partition it left is compacted. Reopening respects the active task cap.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input task.ToggleInput) (task.ToggleOutput, error) {
	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle Query: %v", err)
		return task.ToggleOutput{}, err
	}
	existing, ok := findTask(tasks, input.ID)
	if !ok {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	incomplete, completed := policy.Partition(tasks)
	from, to := incomplete, completed
	if existing.Completed {
		from, to = completed, incomplete
		if len(incomplete) >= task.MaxActiveTasks {
			return task.ToggleOutput{}, task.ErrTaskLimitReached
		}
	}

	now := uc.now()
	updated := existing
	updated.Completed = !existing.Completed
	updated.Position = len(to)
	updated.UpdatedAt = now

	var completedAt *time.Time
	if updated.Completed {
		completedAt = &now
		updated.CompletedAt = &now
	}

	muts := []task.Mutation{task.NewCompletionMutation(existing.ID, updated.Completed, completedAt, updated.Position, now)}
	muts = append(muts, positionMutations(policy.Compact(policy.Without(from, existing.ID)), now)...)

	if err := uc.commit(ctx, sc.UserID, muts); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle commit: %v", err)
		return task.ToggleOutput{}, err
	}
	return task.ToggleOutput{Task: updated}, nil
}

// Delete soft deletes a task and compacts its partition.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteInput) error {
	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Query: %v", err)
		return err
	}
	if _, ok := findTask(tasks, input.ID); !ok {
		return task.ErrTaskNotFound
	}

	if err := uc.commit(ctx, sc.UserID, removalMutations(tasks, []string{input.ID}, uc.now())); err != nil {
		uc.l.Errorf(ctx, "uc.Delete commit: %v", err)
		return err
	}
	return nil
}
