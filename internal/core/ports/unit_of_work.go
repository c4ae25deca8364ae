// Package ports declares the outbound contracts of the application core:
// repositories, the unit of work, and the messenger used for notifications.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the document
// store. Begin acquires the store's global write lock and reads the current
// document; Commit rewrites the full document and releases the lock;
// Rollback releases the lock and discards in-memory changes. There is no
// timeout on lock acquisition: a write either completes or the process fails.
type UnitOfWork interface {
	// Begin starts the transaction, taking the global store lock.
	Begin(ctx context.Context) error

	// Commit writes the modified document back and releases the lock.
	Commit(ctx context.Context) error

	// Rollback releases the lock without writing.
	// Calling Rollback after Commit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the transaction.
	UserRepository() UserRepository
}
