package commands

import (
	"context"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/timeutil"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next order id under the store lock, persists the order in
// pending status, and publishes an order_created event after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher events.Dispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher events.Dispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command and returns the allocated
// order id. The id allocation and the insert happen in one transaction, so
// ids are unique and strictly increasing even under concurrent creations.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		orderID,
		cmd.ShopID(),
		cmd.ShopName(),
		cmd.CustomerPhone(),
		cmd.City(),
		cmd.Address(),
		cmd.PaymentAmount(),
		timeutil.NowString(),
	)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.dispatcher.Publish(ctx, events.NewEvent(events.EventOrderCreated, events.OrderCreatedPayload{
		OrderID:       newOrder.ID(),
		ShopID:        newOrder.ShopID(),
		ShopName:      newOrder.ShopName(),
		City:          newOrder.City(),
		Address:       newOrder.Address(),
		CustomerPhone: newOrder.CustomerPhone(),
		PaymentAmount: newOrder.PaymentAmount(),
	}))

	return newOrder.ID(), nil
}
