package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// WhitelistEntry is one persisted whitelist membership.
type WhitelistEntry struct {
	ID      kernel.UserID
	AddedAt string
}

// WhitelistRepository defines the persistence contract for the dynamic
// authorization whitelist. It is the single source of truth for membership;
// admin ids are implicitly authorized and are never stored or removed here
// by policy.
type WhitelistRepository interface {
	// Add inserts the id with the given timestamp. Adding an id that is
	// already present is a no-op success.
	Add(ctx context.Context, id kernel.UserID, addedAt string) error

	// Remove deletes the id. Removing an absent id reports "not found"
	// via the returned flag rather than an error.
	Remove(ctx context.Context, id kernel.UserID) (bool, error)

	// Contains reports whether the id is a member.
	Contains(ctx context.Context, id kernel.UserID) (bool, error)

	// List returns all entries ordered as stored.
	List(ctx context.Context) ([]WhitelistEntry, error)
}
