package http

import (
	"errors"
	"net/http"

	"daily-three/internal/auth"
	pkgErrors "daily-three/pkg/errors"
)

var (
	errInvalidEmail    = pkgErrors.NewHTTPError(http.StatusBadRequest, "a valid email address is required")
	errCodeInvalid     = pkgErrors.NewHTTPError(http.StatusUnauthorized, "that code is not right")
	errCodeExpired     = pkgErrors.NewHTTPError(http.StatusUnauthorized, "that code has expired, request a new one")
	errTooManyAttempts = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many attempts, request a new code")
	errResendThrottled = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many codes requested, try again later")
	errUserNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	errCodeDelivery    = pkgErrors.NewHTTPError(http.StatusBadGateway, "could not send the code, try again")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, auth.ErrCodeInvalid):
		return errCodeInvalid
	case errors.Is(err, auth.ErrCodeExpired):
		return errCodeExpired
	case errors.Is(err, auth.ErrTooManyAttempts):
		return errTooManyAttempts
	case errors.Is(err, auth.ErrResendThrottled):
		return errResendThrottled
	case errors.Is(err, auth.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, auth.ErrCodeDelivery):
		return errCodeDelivery
	default:
		return pkgErrors.ErrInternalServerError
	}
}
