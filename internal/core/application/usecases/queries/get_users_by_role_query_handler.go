package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetUsersByRoleQueryHandler lists registered users by role.
type GetUsersByRoleQueryHandler struct {
	users ports.UserReader
}

// NewGetUsersByRoleQueryHandler creates a handler for role-filtered user queries.
func NewGetUsersByRoleQueryHandler(users ports.UserReader) GetUsersByRoleQueryHandler {
	return GetUsersByRoleQueryHandler{users: users}
}

// Handle executes the query.
func (h GetUsersByRoleQueryHandler) Handle(
	ctx context.Context,
	query GetUsersByRoleQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.users.GetAllByRole(ctx, query.Role())
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses, nil
}
