package task

import "errors"

var (
	ErrTitleEmpty       = errors.New("task title is empty")
	ErrTitleTooLong     = errors.New("task title exceeds 100 characters")
	ErrTaskLimitReached = errors.New("only 3 incomplete tasks are allowed")
	ErrTaskNotFound     = errors.New("task not found")
)

// ErrCrossPartition is returned by the reorder engine when a drag crosses completion status.
// Callers treat it as a no-op.
var ErrCrossPartition = errors.New("cannot reorder across completion status")
