package jsonstore

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UnitOfWork implements ports.UnitOfWork over the document store.
//
// Begin takes the store's global lock and loads the full document into
// memory; repositories mutate that in-memory copy; Commit rewrites the file
// and releases the lock; Rollback releases the lock discarding the copy.
// The lock spans the whole read-modify-write, which is what makes the id
// counter and status transitions safe under concurrent triggers.
type UnitOfWork struct {
	store  *Store
	doc    document
	active bool
}

// NewUnitOfWork creates a unit of work bound to the given store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin acquires the global store lock and loads the current document.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return errs.NewStorageError("begin with active transaction", nil)
	}

	u.store.mu.Lock()
	doc, err := u.store.read()
	if err != nil {
		u.store.mu.Unlock()
		return err
	}

	u.doc = doc
	u.active = true
	return nil
}

// Commit rewrites the full document and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return errs.NewStorageError("commit without active transaction", nil)
	}

	err := u.store.write(u.doc)
	u.active = false
	u.store.mu.Unlock()
	return err
}

// Rollback releases the lock without writing. Safe to defer: after a
// successful Commit it is a no-op.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.active = false
	u.store.mu.Unlock()
	return nil
}

// OrderRepository returns the order repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

// UserRepository returns the user repository bound to this transaction.
func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: u}
}

// UnitOfWorkFactory implements ports.UnitOfWorkFactory.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory producing units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}

// orderRepository mutates the in-memory document of its unit of work.
type orderRepository struct {
	uow *UnitOfWork
}

// NextID allocates the next order id from the document's counter.
// Runs under the global lock, so concurrent creations can never share an id.
func (r *orderRepository) NextID(_ context.Context) (kernel.OrderID, error) {
	if !r.uow.active {
		return 0, errs.NewStorageError("next id without active transaction", nil)
	}

	id, err := kernel.NewOrderID(r.uow.doc.NextOrderID)
	if err != nil {
		return 0, err
	}
	r.uow.doc.NextOrderID++
	return id, nil
}

// Add appends a new order record.
func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, dto := range r.uow.doc.Orders {
		if dto.ID == aggregate.ID().Int64() {
			return errs.NewValueIsInvalidErrorWithCause("order id",
				fmt.Errorf("order %d already exists", aggregate.ID().Int64()))
		}
	}

	r.uow.doc.Orders = append(r.uow.doc.Orders, orderFromDomain(aggregate))
	return nil
}

// Update replaces an existing order record.
func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.doc.Orders {
		if dto.ID == aggregate.ID().Int64() {
			r.uow.doc.Orders[i] = orderFromDomain(aggregate)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", aggregate.ID().Int64())
}

// Get retrieves an order from the transaction's document.
func (r *orderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.doc.Orders {
		if dto.ID == id.Int64() {
			return orderToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.Int64())
}

// ExistsForUser reports whether any order references the user as shop or
// courier, regardless of status.
func (r *orderRepository) ExistsForUser(_ context.Context, userID kernel.UserID) (bool, error) {
	for _, dto := range r.uow.doc.Orders {
		if dto.ShopID == userID.Int64() {
			return true, nil
		}
		if dto.CourierID != nil && *dto.CourierID == userID.Int64() {
			return true, nil
		}
	}
	return false, nil
}

// userRepository mutates the in-memory document of its unit of work.
type userRepository struct {
	uow *UnitOfWork
}

// Add appends a new user record. Fails if the id is already registered.
func (r *userRepository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, dto := range r.uow.doc.Users {
		if dto.ID == aggregate.ID().Int64() {
			return errs.NewValueIsInvalidErrorWithCause("user id",
				fmt.Errorf("user %d is already registered", aggregate.ID().Int64()))
		}
	}

	r.uow.doc.Users = append(r.uow.doc.Users, userFromDomain(aggregate))
	return nil
}

// Update replaces an existing user record.
func (r *userRepository) Update(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.doc.Users {
		if dto.ID == aggregate.ID().Int64() {
			r.uow.doc.Users[i] = userFromDomain(aggregate)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("user", aggregate.ID().Int64())
}

// Get retrieves a user from the transaction's document.
func (r *userRepository) Get(_ context.Context, id kernel.UserID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.doc.Users {
		if dto.ID == id.Int64() {
			return userToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("user", id.Int64())
}

// Delete removes a user record.
func (r *userRepository) Delete(_ context.Context, id kernel.UserID) error {
	for i, dto := range r.uow.doc.Users {
		if dto.ID == id.Int64() {
			r.uow.doc.Users = append(r.uow.doc.Users[:i], r.uow.doc.Users[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("user", id.Int64())
}
