package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every order in the store.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewGetAllOrdersQueryHandler creates a handler for full order list queries.
func NewGetAllOrdersQueryHandler(orders ports.OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewOrderResponses(orders), nil
}
