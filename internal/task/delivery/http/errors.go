package http

import (
	"errors"
	"net/http"

	"daily-three/internal/task"
	pkgErrors "daily-three/pkg/errors"
)

var (
	errTitleEmpty    = pkgErrors.NewHTTPError(http.StatusBadRequest, "title is required")
	errTitleTooLong  = pkgErrors.NewHTTPError(http.StatusBadRequest, "title must be at most 100 characters")
	errLimitReached  = pkgErrors.NewHTTPError(http.StatusConflict, "finish a task before adding another, only 3 are allowed")
	errTaskNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errMissingTaskID = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTitleEmpty):
		return errTitleEmpty
	case errors.Is(err, task.ErrTitleTooLong):
		return errTitleTooLong
	case errors.Is(err, task.ErrTaskLimitReached):
		return errLimitReached
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
