package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/registration"
	"dispatch/internal/pkg/errs"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates a domain error into an HTTP status. Unknown errors
// are logged and reported as 500 without leaking detail to the caller.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrHasActiveOrders),
		errors.Is(err, registration.ErrAlreadyRegistered):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", "method", ctx.Request().Method, "path", ctx.Path(), "error", err)

		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
