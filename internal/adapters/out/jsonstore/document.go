// Package jsonstore implements persistence over two JSON documents: the main
// store (users, orders, and the order id counter) and the whitelist store.
//
// Every mutation reads the full document, modifies it in memory, and rewrites
// the whole file while holding a single global lock. There is no row-level
// locking. Reads outside the lock take a point-in-time snapshot and may
// observe slightly stale data, which is accepted because no read-modify-write
// happens outside the lock.
package jsonstore

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
)

// userDTO is the stored representation of a user record.
type userDTO struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

// orderDTO is the stored representation of an order record. Courier and
// delivery fields are present only once the corresponding transition happened.
type orderDTO struct {
	ID              int64   `json:"id"`
	ShopID          int64   `json:"shop_id"`
	ShopName        string  `json:"shop_name"`
	CustomerPhone   string  `json:"customer_phone"`
	City            string  `json:"city"`
	DeliveryAddress string  `json:"delivery_address"`
	PaymentAmount   float64 `json:"payment_amount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	CourierID       *int64  `json:"courier_id,omitempty"`
	CourierName     string  `json:"courier_name,omitempty"`
	AssignedAt      string  `json:"assigned_at,omitempty"`
	DeliveredAt     string  `json:"delivered_at,omitempty"`
}

// document is the full main-store layout.
type document struct {
	Users       []userDTO  `json:"users"`
	Orders      []orderDTO `json:"orders"`
	NextOrderID int64      `json:"next_order_id"`
}

func newDocument() document {
	return document{
		Users:       []userDTO{},
		Orders:      []orderDTO{},
		NextOrderID: 1,
	}
}

// whitelistEntryDTO is one stored whitelist membership.
type whitelistEntryDTO struct {
	ID      int64  `json:"id"`
	AddedAt string `json:"added_at"`
}

// whitelistDocument is the full whitelist-store layout.
type whitelistDocument struct {
	Users []whitelistEntryDTO `json:"users"`
}

func newWhitelistDocument() whitelistDocument {
	return whitelistDocument{Users: []whitelistEntryDTO{}}
}

// orderFromDomain converts an order aggregate to its stored representation.
func orderFromDomain(aggregate *order.Order) orderDTO {
	var courierID *int64
	if id := aggregate.Courier(); id != nil {
		raw := id.Int64()
		courierID = &raw
	}

	return orderDTO{
		ID:              aggregate.ID().Int64(),
		ShopID:          aggregate.ShopID().Int64(),
		ShopName:        aggregate.ShopName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		City:            aggregate.City(),
		DeliveryAddress: aggregate.Address(),
		PaymentAmount:   aggregate.PaymentAmount(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		CourierID:       courierID,
		CourierName:     aggregate.CourierName(),
		AssignedAt:      aggregate.AssignedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

// orderToDomain reconstructs an order aggregate from its stored representation.
func orderToDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.NewUserID(dto.ShopID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UserID
	if dto.CourierID != nil {
		cID, courierErr := kernel.NewUserID(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		shopID,
		dto.ShopName,
		dto.CustomerPhone,
		dto.City,
		dto.DeliveryAddress,
		dto.PaymentAmount,
		status,
		dto.CreatedAt,
		courierID,
		dto.CourierName,
		dto.AssignedAt,
		dto.DeliveredAt,
	)
}

// userFromDomain converts a user aggregate to its stored representation.
func userFromDomain(aggregate *user.User) userDTO {
	return userDTO{
		ID:           aggregate.ID().Int64(),
		Username:     aggregate.DisplayName(),
		Role:         aggregate.Role().String(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

// userToDomain reconstructs a user aggregate from its stored representation.
func userToDomain(dto userDTO) (*user.User, error) {
	id, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Username, role, dto.RegisteredAt)
}
