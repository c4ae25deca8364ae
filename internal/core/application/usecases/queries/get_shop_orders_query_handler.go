package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetShopOrdersQueryHandler lists the orders a shop has placed, in any status.
type GetShopOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewGetShopOrdersQueryHandler creates a handler for shop order queries.
func NewGetShopOrdersQueryHandler(orders ports.OrderReader) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllByShop(ctx, query.ShopID())
	if err != nil {
		return nil, err
	}
	return NewOrderResponses(orders), nil
}
