package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// headerUserID carries the caller identity set by the chat transport.
const headerUserID = "X-User-ID"

const contextKeyCaller = "caller-id"

// resolveCaller extracts the caller id from the X-User-ID header and stores
// it on the request context. Requests without a parsable id are rejected.
func (s *Server) resolveCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := ctx.Request().Header.Get(headerUserID)
		if raw == "" {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "missing " + headerUserID + " header"})
		}

		callerID, err := kernel.ParseUserID(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid " + headerUserID + " header"})
		}

		ctx.Set(contextKeyCaller, callerID)

		return next(ctx)
	}
}

// requireAccess gates every route through the access policy. A rejected
// caller gets 403 and the rejection is published so admins hear about it.
func (s *Server) requireAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		callerID := callerFrom(ctx)

		authorized, err := s.policy.IsAuthorized(ctx.Request().Context(), callerID)
		if err != nil {
			s.logger.Error("access check failed", "user_id", callerID, "error", err)

			return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "access check failed"})
		}

		if !authorized {
			intent := ctx.Request().Method + " " + ctx.Path()
			s.dispatcher.Publish(ctx.Request().Context(), events.NewEvent(
				events.EventUnauthorizedAccess,
				events.UnauthorizedAccessPayload{UserID: callerID, Intent: intent},
			))

			return ctx.JSON(http.StatusForbidden, errorResponse{Error: "access denied"})
		}

		return next(ctx)
	}
}

func callerFrom(ctx echo.Context) kernel.UserID {
	callerID, _ := ctx.Get(contextKeyCaller).(kernel.UserID)

	return callerID
}

// callerRole resolves the caller's effective role. Configured admins are
// admins regardless of what the user store says.
func (s *Server) callerRole(ctx echo.Context) (user.Role, error) {
	callerID := callerFrom(ctx)
	if s.policy.IsAdmin(callerID) {
		return user.RoleAdmin, nil
	}

	registered, err := s.users.Get(ctx.Request().Context(), callerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewPermissionDeniedError(callerID.Int64(), "use this command without registering")
		}

		return "", err
	}

	return registered.Role(), nil
}

// requireRole resolves the caller's role and rejects the request unless it
// matches one of the allowed roles.
func (s *Server) requireRole(ctx echo.Context, allowed ...user.Role) (user.Role, error) {
	role, err := s.callerRole(ctx)
	if err != nil {
		return "", err
	}

	for _, candidate := range allowed {
		if role == candidate {
			return role, nil
		}
	}

	return "", errs.NewPermissionDeniedError(callerFrom(ctx).Int64(), "use this command with the "+role.String()+" role")
}
