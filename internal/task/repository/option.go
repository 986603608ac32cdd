package repository

import "daily-three/internal/task"

// ListTasksOptions holds filter parameters for listing live Tasks.
// Results are ordered by completion status then position.
type ListTasksOptions struct {
	OwnerID string
}

// TransactOptions holds the batch applied by Transact.
type TransactOptions struct {
	OwnerID   string
	Mutations []task.Mutation
}
