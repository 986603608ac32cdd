package usecase

import (
	"context"
	"time"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/policy"
	"daily-three/pkg/datemath"
)

// List returns the board, running the daily reset first when it is due.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	now := uc.now()
	cal := uc.calendar(ctx, input.Client)

	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Query: %v", err)
		return task.ListOutput{}, err
	}

	reset, err := uc.dailyReset(ctx, sc.UserID, input.Client, tasks, now, cal)
	if err != nil {
		return task.ListOutput{}, err
	}
	if len(reset.DeletedIDs) > 0 {
		tasks, err = uc.store.Query(ctx, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List Query after reset: %v", err)
			return task.ListOutput{}, err
		}
	}

	board := policy.BuildBoard(tasks, now, cal)
	board.ResetRan = reset.Ran
	return task.ListOutput{Board: board}, nil
}

// DailyReset evaluates the reset gate for the calling device.
func (uc *implUseCase) DailyReset(ctx context.Context, sc model.Scope, input task.DailyResetInput) (task.DailyResetOutput, error) {
	tasks, err := uc.store.Query(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DailyReset Query: %v", err)
		return task.DailyResetOutput{}, err
	}
	return uc.dailyReset(ctx, sc.UserID, input.Client, tasks, uc.now(), uc.calendar(ctx, input.Client))
}

// dailyReset runs the gate for a non-empty list and soft deletes expired tasks
// in one transaction when it fires.
func (uc *implUseCase) dailyReset(
	ctx context.Context,
	ownerID string,
	client task.ClientContext,
	tasks []task.Task,
	now time.Time,
	cal *datemath.Calendar,
) (task.DailyResetOutput, error) {
	if len(tasks) == 0 {
		return task.DailyResetOutput{}, nil
	}

	run, err := uc.gate.Check(policy.MarkerKey(ownerID, deviceID(client)), now, cal)
	if err != nil {
		uc.l.Errorf(ctx, "uc.dailyReset gate.Check: %v", err)
		return task.DailyResetOutput{}, err
	}
	if !run {
		return task.DailyResetOutput{}, nil
	}

	ids := policy.TasksToDelete(tasks, now, cal)
	if len(ids) == 0 {
		return task.DailyResetOutput{Ran: true}, nil
	}

	if err := uc.commit(ctx, ownerID, removalMutations(tasks, ids, now)); err != nil {
		uc.l.Errorf(ctx, "uc.dailyReset commit: %v", err)
		return task.DailyResetOutput{}, err
	}

	uc.l.Infof(ctx, "uc.dailyReset: removed %d expired tasks for owner %s", len(ids), ownerID)
	return task.DailyResetOutput{Ran: true, DeletedIDs: ids}, nil
}
