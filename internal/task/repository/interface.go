package repository

import (
	"context"

	"daily-three/internal/task"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	Migrate(ctx context.Context) error
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	// Transact applies every mutation in one transaction or none of them.
	Transact(ctx context.Context, opt TransactOptions) error
}
