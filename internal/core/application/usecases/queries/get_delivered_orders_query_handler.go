package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetDeliveredOrdersQueryHandler lists deliveries completed in a time window.
type GetDeliveredOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewGetDeliveredOrdersQueryHandler creates a handler for delivered-in-window queries.
func NewGetDeliveredOrdersQueryHandler(orders ports.OrderReader) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetDeliveredInWindow(ctx, query.Window())
	if err != nil {
		return nil, err
	}
	return NewOrderResponses(orders), nil
}
