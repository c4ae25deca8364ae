package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type registrationStepRequest struct {
	Input string `json:"input"`
}

// handleRegistrationStep feeds one input into the caller's registration
// conversation. An empty input opens a new conversation.
func (s *Server) handleRegistrationStep(ctx echo.Context) error {
	var req registrationStepRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	result, err := s.registrationFlow.Step(ctx.Request().Context(), callerFrom(ctx), req.Input)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (s *Server) handleRegistrationCancel(ctx echo.Context) error {
	cancelled := s.registrationFlow.Cancel(callerFrom(ctx))

	return ctx.JSON(http.StatusOK, map[string]bool{"cancelled": cancelled})
}

// handleRegistrationReset lets a registered user re-run registration with a
// different role. The stored profile survives until the new one is saved.
func (s *Server) handleRegistrationReset(ctx echo.Context) error {
	s.registrationFlow.Reset(callerFrom(ctx))

	return ctx.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
