package events

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventUserRegistered     EventType = "user_registered"
	EventOrderCreated       EventType = "order_created"
	EventOrderAssigned      EventType = "order_assigned"
	EventOrderDelivered     EventType = "order_delivered"
	EventOrderComment       EventType = "order_comment"
)

// Event represents a domain event emitted after a committed state change
// (or, for unauthorized access, after a rejected intent).
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewEvent creates an event with a fresh id and the current time.
func NewEvent(eventType EventType, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// UnauthorizedAccessPayload payload.
type UnauthorizedAccessPayload struct {
	UserID kernel.UserID `json:"user_id"`
	Intent string        `json:"intent"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID      kernel.UserID `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Role        user.Role     `json:"role"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID       kernel.OrderID `json:"order_id"`
	ShopID        kernel.UserID  `json:"shop_id"`
	ShopName      string         `json:"shop_name"`
	City          string         `json:"city"`
	Address       string         `json:"address"`
	CustomerPhone string         `json:"customer_phone"`
	PaymentAmount float64        `json:"payment_amount"`
}

// OrderAssignedPayload payload.
type OrderAssignedPayload struct {
	OrderID       kernel.OrderID `json:"order_id"`
	CourierID     kernel.UserID  `json:"courier_id"`
	CourierName   string         `json:"courier_name"`
	ShopName      string         `json:"shop_name"`
	City          string         `json:"city"`
	Address       string         `json:"address"`
	CustomerPhone string         `json:"customer_phone"`
	PaymentAmount float64        `json:"payment_amount"`
}

// OrderDeliveredPayload payload.
type OrderDeliveredPayload struct {
	OrderID     kernel.OrderID `json:"order_id"`
	ShopID      kernel.UserID  `json:"shop_id"`
	CourierID   kernel.UserID  `json:"courier_id"`
	CourierName string         `json:"courier_name"`
	DeliveredAt string         `json:"delivered_at"`
}

// OrderCommentPayload payload.
type OrderCommentPayload struct {
	OrderID  kernel.OrderID `json:"order_id"`
	AuthorID kernel.UserID  `json:"author_id"`
	ShopID   kernel.UserID  `json:"shop_id"`
	ShopName string         `json:"shop_name"`
	City     string         `json:"city"`
	Address  string         `json:"address"`
	Text     string         `json:"text"`
}
