package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrGetUsersByRoleQueryIsNotConstructed = errors.New(
	"GetUsersByRoleQuery must be created via NewGetUsersByRoleQuery constructor",
)

// GetUsersByRoleQuery retrieves registered users holding one role, e.g. the
// courier list the admin assigns from.
type GetUsersByRoleQuery struct {
	role user.Role

	guard guard.ConstructorGuard
}

// NewGetUsersByRoleQuery creates a query for users with the given role.
func NewGetUsersByRoleQuery(role user.Role) (GetUsersByRoleQuery, error) {
	if err := role.Validate(); err != nil {
		return GetUsersByRoleQuery{}, err
	}

	return GetUsersByRoleQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersByRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersByRoleQueryIsNotConstructed)
}

// Role returns the requested role.
func (q GetUsersByRoleQuery) Role() user.Role {
	return q.role
}
