package usecase

import (
	"context"
	"errors"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/policy"
)

// Reorder applies a drag of ActiveID onto OverID within one partition.
// Cross-partition drags and drops in place change nothing.
func (uc *implUseCase) Reorder(ctx context.Context, sc model.Scope, input task.ReorderInput) (task.ReorderOutput, error) {
	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder Query: %v", err)
		return task.ReorderOutput{}, err
	}

	sub, src, dst, err := policy.Locate(tasks, input.ActiveID, input.OverID)
	if errors.Is(err, task.ErrCrossPartition) {
		return task.ReorderOutput{Moved: false}, nil
	}
	if err != nil {
		return task.ReorderOutput{}, err
	}

	updates := policy.Reorder(sub, src, dst)
	if len(updates) == 0 {
		return task.ReorderOutput{Moved: false, Order: sub}, nil
	}

	now := uc.now()
	if err := uc.commit(ctx, sc.UserID, positionMutations(updates, now)); err != nil {
		uc.l.Errorf(ctx, "uc.Reorder commit: %v", err)
		return task.ReorderOutput{}, err
	}

	order := policy.Move(sub, src, dst)
	for i := range order {
		order[i].Position = i
		order[i].UpdatedAt = now
	}
	return task.ReorderOutput{Moved: true, Order: order}, nil
}
