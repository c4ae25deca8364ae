// Package notify turns domain events into human-readable messages and
// delivers them through a Messenger. Delivery is best-effort: one attempt
// per recipient, failures are logged and never reach the operation that
// raised the event.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Notifier renders and fans out event notifications.
type Notifier struct {
	messenger ports.Messenger
	adminIDs  []kernel.UserID
	logger    *slog.Logger
}

// NewNotifier creates a notifier delivering through the given messenger.
func NewNotifier(messenger ports.Messenger, adminIDs []kernel.UserID, logger *slog.Logger) *Notifier {
	return &Notifier{
		messenger: messenger,
		adminIDs:  adminIDs,
		logger:    logger.With("component", "notifier"),
	}
}

// Register subscribes the notifier to every event type it renders.
func (n *Notifier) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventUnauthorizedAccess, n.onUnauthorizedAccess)
	dispatcher.Subscribe(events.EventUserRegistered, n.onUserRegistered)
	dispatcher.Subscribe(events.EventOrderCreated, n.onOrderCreated)
	dispatcher.Subscribe(events.EventOrderAssigned, n.onOrderAssigned)
	dispatcher.Subscribe(events.EventOrderDelivered, n.onOrderDelivered)
	dispatcher.Subscribe(events.EventOrderComment, n.onOrderComment)
}

func (n *Notifier) onUnauthorizedAccess(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.UnauthorizedAccessPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf(
		"Unauthorized access attempt.\nUser id: %d\nIntent: %s\nGrant access by adding the id to the whitelist.",
		payload.UserID.Int64(), payload.Intent)
	n.toAdmins(ctx, text)
	return nil
}

func (n *Notifier) onUserRegistered(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.UserRegisteredPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf("New %s registered: %s (id %d)",
		payload.Role, payload.DisplayName, payload.UserID.Int64())
	n.toAdmins(ctx, text)
	return nil
}

func (n *Notifier) onOrderCreated(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.OrderCreatedPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf(
		"New order #%d\nShop: %s\nDestination: %s, %s\nCustomer phone: %s\nAmount to collect: %.2f",
		payload.OrderID.Int64(), payload.ShopName, payload.City, payload.Address,
		payload.CustomerPhone, payload.PaymentAmount)
	n.toAdmins(ctx, text)
	return nil
}

func (n *Notifier) onOrderAssigned(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.OrderAssignedPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf(
		"Order #%d is assigned to you.\nShop: %s\nDestination: %s, %s\nCustomer phone: %s\nAmount to collect: %.2f",
		payload.OrderID.Int64(), payload.ShopName, payload.City, payload.Address,
		payload.CustomerPhone, payload.PaymentAmount)
	n.send(ctx, payload.CourierID, text)
	return nil
}

func (n *Notifier) onOrderDelivered(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.OrderDeliveredPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf("Order #%d was delivered by %s at %s.",
		payload.OrderID.Int64(), payload.CourierName, payload.DeliveredAt)
	n.send(ctx, payload.ShopID, text)
	n.toAdmins(ctx, text)
	return nil
}

func (n *Notifier) onOrderComment(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.OrderCommentPayload)
	if !ok {
		return n.badPayload(e)
	}

	text := fmt.Sprintf("Comment on order #%d (shop %s, %s, %s) from user %d:\n%s",
		payload.OrderID.Int64(), payload.ShopName, payload.City, payload.Address,
		payload.AuthorID.Int64(), payload.Text)
	n.send(ctx, payload.ShopID, text)
	n.toAdmins(ctx, text)
	return nil
}

func (n *Notifier) toAdmins(ctx context.Context, text string) {
	for _, adminID := range n.adminIDs {
		n.send(ctx, adminID, text)
	}
}

// send makes a single delivery attempt and logs the outcome.
func (n *Notifier) send(ctx context.Context, recipient kernel.UserID, text string) {
	if err := n.messenger.Send(ctx, recipient, text); err != nil {
		n.logger.Warn("notification delivery failed",
			"recipient", recipient.Int64(), "error", err)
	}
}

func (n *Notifier) badPayload(e events.Event) error {
	n.logger.Error("event carries unexpected payload", "event_type", e.Type, "event_id", e.ID)
	return fmt.Errorf("unexpected payload for event %s", e.Type)
}
