package repository

import "errors"

var (
	ErrFailedToInsert   = errors.New("failed to insert record")
	ErrFailedToList     = errors.New("failed to list records")
	ErrFailedToUpdate   = errors.New("failed to update record")
	ErrFailedToTransact = errors.New("failed to commit transaction")
	ErrFailedToMigrate  = errors.New("failed to migrate schema")

	// ErrTargetGone means an update addressed a task that is missing, deleted or owned by someone else.
	ErrTargetGone      = errors.New("mutation target is missing or deleted")
	ErrInvalidMutation = errors.New("invalid mutation")
	// ErrActiveLimit means the batch would leave the owner with more incomplete tasks than allowed.
	ErrActiveLimit     = errors.New("active task limit reached")
)
