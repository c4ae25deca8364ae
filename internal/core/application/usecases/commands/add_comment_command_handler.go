package commands

import (
	"context"

	"dispatch/internal/core/application/events"
)

// AddCommentCommandHandler relays an order comment to the admins.
//
// The order is looked up only to confirm it exists and to enrich the
// notification with its details; the comment itself is never persisted.
type AddCommentCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher events.Dispatcher
}

// NewAddCommentCommandHandler creates a handler for order comments.
func NewAddCommentCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher events.Dispatcher,
) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle verifies the order exists and publishes an order_comment event.
func (h *AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Read-only: the transaction is released by the deferred rollback.
	h.dispatcher.Publish(ctx, events.NewEvent(events.EventOrderComment, events.OrderCommentPayload{
		OrderID:  target.ID(),
		AuthorID: cmd.AuthorID(),
		ShopID:   target.ShopID(),
		ShopName: target.ShopName(),
		City:     target.City(),
		Address:  target.Address(),
		Text:     cmd.Text(),
	}))

	return nil
}
