package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/timeutil"
)

// handleListWhitelist returns the dynamic whitelist entries. Configured
// admins and the static defaults are not part of the listing.
func (s *Server) handleListWhitelist(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	entries, err := s.policy.ListWhitelist(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

type whitelistAddRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (s *Server) handleAddToWhitelist(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	var req whitelistAddRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := kernel.NewUserID(req.UserID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.policy.AddToWhitelist(ctx.Request().Context(), id, timeutil.NowString()); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"status": "whitelisted"})
}

func (s *Server) handleRemoveFromWhitelist(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := kernel.ParseUserID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.policy.RemoveFromWhitelist(ctx.Request().Context(), id); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "removed"})
}

// handleProposeDeletion records an admin's intent to delete a user. Nothing
// is removed until the admin confirms.
func (s *Server) handleProposeDeletion(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	targetID, err := kernel.ParseUserID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.deletionFlow.Propose(callerFrom(ctx), targetID); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, map[string]string{"status": "awaiting confirmation"})
}

type deletionConfirmRequest struct {
	Answer string `json:"answer" validate:"required"`
}

func (s *Server) handleConfirmDeletion(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	targetID, err := kernel.ParseUserID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req deletionConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// The URL must name the same user the pending proposal points at.
	if pending, ok := s.deletionFlow.Pending(callerFrom(ctx)); !ok || pending != targetID {
		return s.respondError(ctx, errs.NewObjectNotFoundError("deletion proposal", targetID.Int64()))
	}

	outcome, err := s.deletionFlow.Confirm(ctx.Request().Context(), callerFrom(ctx), req.Answer)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"outcome": string(outcome)})
}
