package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserRepository defines the transactional persistence contract for user
// aggregates.
type UserRepository interface {
	// Add persists a new user. Fails if the id is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update replaces an existing user record, used by role reset.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their external chat identity.
	Get(ctx context.Context, id kernel.UserID) (*user.User, error)

	// Delete removes a user record. The caller is responsible for the
	// order-reference check before deleting.
	Delete(ctx context.Context, id kernel.UserID) error
}

// UserReader defines the read-only query contract over users.
type UserReader interface {
	// Get retrieves a user by id.
	Get(ctx context.Context, id kernel.UserID) (*user.User, error)

	// GetAll retrieves every registered user.
	GetAll(ctx context.Context) ([]*user.User, error)

	// GetAllByRole retrieves the users registered with the given role.
	GetAllByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}
