package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the transactional persistence contract for order
// aggregates. Instances are bound to a unit of work; all mutations become
// durable only on commit.
type OrderRepository interface {
	// NextID allocates the next order id from the store's monotonic counter.
	// Ids are never reused, even though orders are never deleted anyway.
	NextID(ctx context.Context) (kernel.OrderID, error)

	// Add persists a new order aggregate.
	// The order must be valid and its id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// ExistsForUser reports whether any stored order references the user
	// as shop or courier, regardless of order status.
	ExistsForUser(ctx context.Context, userID kernel.UserID) (bool, error)
}

// OrderReader defines the read-only query contract over orders.
// Reads take a point-in-time snapshot and may observe slightly stale data
// relative to an in-flight write.
type OrderReader interface {
	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInPendingStatus retrieves orders awaiting courier assignment.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByShop retrieves every order placed by the given shop.
	GetAllByShop(ctx context.Context, shopID kernel.UserID) ([]*order.Order, error)

	// GetAllByCourier retrieves the orders assigned to the given courier,
	// in Assigned or Delivered status. Pending orders are never included.
	GetAllByCourier(ctx context.Context, courierID kernel.UserID) ([]*order.Order, error)

	// GetDeliveredInWindow retrieves delivered orders whose delivery
	// timestamp starts with the given prefix (typically a "2006-01-02" date).
	GetDeliveredInWindow(ctx context.Context, prefix string) ([]*order.Order, error)
}
