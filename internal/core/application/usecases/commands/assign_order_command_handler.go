package commands

import (
	"context"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/timeutil"
)

// AssignOrderCommandHandler hands a pending order to a courier.
//
// Assignment is only valid from pending status; a reassignment attempt
// surfaces as an invalid transition error from the aggregate. Publishes an
// order_assigned event after commit.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher events.Dispatcher
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
func NewAssignOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher events.Dispatcher,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command and returns the updated order.
func (h *AssignOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = target.Assign(cmd.CourierID(), cmd.CourierName(), timeutil.NowString()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Publish(ctx, events.NewEvent(events.EventOrderAssigned, events.OrderAssignedPayload{
		OrderID:       target.ID(),
		CourierID:     cmd.CourierID(),
		CourierName:   cmd.CourierName(),
		ShopName:      target.ShopName(),
		City:          target.City(),
		Address:       target.Address(),
		CustomerPhone: target.CustomerPhone(),
		PaymentAmount: target.PaymentAmount(),
	}))

	return target, nil
}
