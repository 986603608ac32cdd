package task

import (
	"context"

	"daily-three/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	UpdateTitle(ctx context.Context, sc model.Scope, input UpdateTitleInput) (UpdateTitleOutput, error)
	Toggle(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
	Reorder(ctx context.Context, sc model.Scope, input ReorderInput) (ReorderOutput, error)
	DailyReset(ctx context.Context, sc model.Scope, input DailyResetInput) (DailyResetOutput, error)

	// Watch streams board snapshots and ambient events until ctx ends.
	Watch(ctx context.Context, sc model.Scope, input WatchInput) (<-chan Event, error)
}

// Store is the reactive persistence boundary for tasks.
type Store interface {
	// Query returns the owner's non-deleted tasks ordered by position.
	Query(ctx context.Context, ownerID string) ([]Task, error)
	// Subscribe delivers the current snapshot and one more after every committed transaction.
	Subscribe(ctx context.Context, ownerID string) <-chan Snapshot
	// Transact applies muts atomically. The returned channel yields exactly one result.
	Transact(ctx context.Context, ownerID string, muts []Mutation) <-chan error
}
