package http

import (
	"errors"
	"net/http"

	"aidtracker/internal/generated/servers"
	"aidtracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and application errors to a response. Storage
// failures end up as 500 without leaking their text.
func writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
