package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetCourierOrdersQueryHandler lists assigned and delivered orders of a courier.
type GetCourierOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order queries.
func NewGetCourierOrdersQueryHandler(orders ports.OrderReader) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}
	return NewOrderResponses(orders), nil
}
