package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetPendingOrdersQueryHandler lists orders still waiting for a courier.
// This is the admin's assignment work queue.
type GetPendingOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(orders ports.OrderReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}
	return NewOrderResponses(orders), nil
}
