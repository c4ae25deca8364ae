package jsonstore

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// OrderReader serves read-only order queries from store snapshots.
type OrderReader struct {
	store *Store
}

// NewOrderReader creates an order reader over the given store.
func NewOrderReader(store *Store) *OrderReader {
	return &OrderReader{store: store}
}

// GetAll retrieves every stored order.
func (r *OrderReader) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.selectOrders(func(orderDTO) bool { return true })
}

// GetAllInPendingStatus retrieves orders awaiting courier assignment.
func (r *OrderReader) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	return r.selectOrders(func(dto orderDTO) bool {
		return dto.Status == order.Pending.String()
	})
}

// GetAllByShop retrieves every order placed by the given shop.
func (r *OrderReader) GetAllByShop(_ context.Context, shopID kernel.UserID) ([]*order.Order, error) {
	return r.selectOrders(func(dto orderDTO) bool {
		return dto.ShopID == shopID.Int64()
	})
}

// GetAllByCourier retrieves assigned and delivered orders of the given
// courier. Pending orders have no courier and can never match.
func (r *OrderReader) GetAllByCourier(_ context.Context, courierID kernel.UserID) ([]*order.Order, error) {
	return r.selectOrders(func(dto orderDTO) bool {
		return dto.CourierID != nil && *dto.CourierID == courierID.Int64()
	})
}

// GetDeliveredInWindow retrieves delivered orders whose delivery timestamp
// starts with the given prefix. The match inherits whatever precision the
// timestamp layout provides.
func (r *OrderReader) GetDeliveredInWindow(_ context.Context, prefix string) ([]*order.Order, error) {
	return r.selectOrders(func(dto orderDTO) bool {
		return dto.Status == order.Delivered.String() &&
			len(dto.DeliveredAt) >= len(prefix) && dto.DeliveredAt[:len(prefix)] == prefix
	})
}

func (r *OrderReader) selectOrders(match func(orderDTO) bool) ([]*order.Order, error) {
	doc, err := r.store.snapshot()
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, dto := range doc.Orders {
		if !match(dto) {
			continue
		}
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UserReader serves read-only user queries from store snapshots.
type UserReader struct {
	store *Store
}

// NewUserReader creates a user reader over the given store.
func NewUserReader(store *Store) *UserReader {
	return &UserReader{store: store}
}

// Get retrieves a user by id.
func (r *UserReader) Get(_ context.Context, id kernel.UserID) (*user.User, error) {
	doc, err := r.store.snapshot()
	if err != nil {
		return nil, err
	}

	for _, dto := range doc.Users {
		if dto.ID == id.Int64() {
			return userToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("user", id.Int64())
}

// GetAll retrieves every registered user.
func (r *UserReader) GetAll(_ context.Context) ([]*user.User, error) {
	return r.selectUsers(func(userDTO) bool { return true })
}

// GetAllByRole retrieves the users registered with the given role.
func (r *UserReader) GetAllByRole(_ context.Context, role user.Role) ([]*user.User, error) {
	return r.selectUsers(func(dto userDTO) bool {
		return dto.Role == role.String()
	})
}

func (r *UserReader) selectUsers(match func(userDTO) bool) ([]*user.User, error) {
	doc, err := r.store.snapshot()
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0)
	for _, dto := range doc.Users {
		if !match(dto) {
			continue
		}
		u, err := userToDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
