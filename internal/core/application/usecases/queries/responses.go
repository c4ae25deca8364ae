// Package queries contains read-only operations over the stored state.
// Query handlers read from store snapshots and never mutate anything, so
// they run outside the write lock.
package queries

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
)

// OrderResponse is the read-model representation of an order.
type OrderResponse struct {
	ID            int64   `json:"id"`
	ShopID        int64   `json:"shop_id"`
	ShopName      string  `json:"shop_name"`
	CustomerPhone string  `json:"customer_phone"`
	City          string  `json:"city"`
	Address       string  `json:"address"`
	PaymentAmount float64 `json:"payment_amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	CourierID     *int64  `json:"courier_id,omitempty"`
	CourierName   string  `json:"courier_name,omitempty"`
	AssignedAt    string  `json:"assigned_at,omitempty"`
	DeliveredAt   string  `json:"delivered_at,omitempty"`
}

// NewOrderResponse builds the read-model representation of an order.
func NewOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID().Int64(),
		ShopID:        o.ShopID().Int64(),
		ShopName:      o.ShopName(),
		CustomerPhone: o.CustomerPhone(),
		City:          o.City(),
		Address:       o.Address(),
		PaymentAmount: o.PaymentAmount(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		CourierName:   o.CourierName(),
		AssignedAt:    o.AssignedAt(),
		DeliveredAt:   o.DeliveredAt(),
	}
	if courier := o.Courier(); courier != nil {
		id := courier.Int64()
		resp.CourierID = &id
	}
	return resp
}

// NewOrderResponses maps a slice of orders into responses. The result is
// never nil.
func NewOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

// UserResponse is the read-model representation of a registered user.
type UserResponse struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

// NewUserResponse builds the read-model representation of a user.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID().Int64(),
		DisplayName:  u.DisplayName(),
		Role:         u.Role().String(),
		RegisteredAt: u.RegisteredAt(),
	}
}
