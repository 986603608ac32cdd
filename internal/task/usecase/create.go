package usecase

import (
	"context"

	"github.com/google/uuid"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/policy"
)

// Create adds an incomplete task at the end of the incomplete partition.
// The cap is checked before anything is submitted to the store.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return task.CreateOutput{}, err
	}

	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Query: %v", err)
		return task.CreateOutput{}, err
	}

	incomplete, _ := policy.Partition(tasks)
	if len(incomplete) >= task.MaxActiveTasks {
		return task.CreateOutput{}, task.ErrTaskLimitReached
	}

	now := uc.now()
	created := task.Task{
		ID:        uuid.NewString(),
		OwnerID:   sc.UserID,
		Title:     title,
		Position:  len(incomplete),
		CreatedAt: now,
		UpdatedAt: now,
	}

	mut := task.NewCreateMutation(created.ID, created.Title, created.Position, now)
	if err := uc.commit(ctx, sc.UserID, []task.Mutation{mut}); err != nil {
		uc.l.Errorf(ctx, "uc.Create commit: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: created}, nil
}
