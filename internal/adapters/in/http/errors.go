package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
// Internal failures carry an opaque message; details go to the log only.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps domain error categories onto HTTP status codes:
// not found 404, invalid transition 409, forbidden 403, invalid input 400,
// concurrency conflict 409, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders the error as JSON. Messages from the domain taxonomy are
// safe to expose; unclassified errors are masked.
func writeError(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "internal error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
