package commands

import (
	"context"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/timeutil"
)

// MarkDeliveredCommandHandler completes an assigned order.
//
// Even though routing already restricts the operation to couriers, the
// handler re-checks that the caller is the courier the order was assigned
// to. Publishes an order_delivered event after commit.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher events.Dispatcher
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher events.Dispatcher,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the delivery claim and returns the updated order.
func (h *MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveredCommand,
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

	// Orders without a courier fall through to the transition check below.
	if target.Courier() != nil && !target.BelongsToCourier(cmd.CallerID()) {
		return nil, errs.NewPermissionDeniedError(cmd.CallerID().Int64(), "mark the order delivered")
	}

	if err = target.MarkDelivered(timeutil.NowString()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Publish(ctx, events.NewEvent(events.EventOrderDelivered, events.OrderDeliveredPayload{
		OrderID:     target.ID(),
		ShopID:      target.ShopID(),
		CourierID:   cmd.CallerID(),
		CourierName: target.CourierName(),
		DeliveredAt: target.DeliveredAt(),
	}))

	return target, nil
}
