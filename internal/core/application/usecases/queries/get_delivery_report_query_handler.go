package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/timeutil"
)

// GetDeliveryReportQueryHandler builds the admin delivery summary.
//
// Today/yesterday windows are resolved by matching the delivery timestamp's
// date prefix, which is exact because timestamps are stored as local
// date-time strings.
type GetDeliveryReportQueryHandler struct {
	orders ports.OrderReader
}

// NewGetDeliveryReportQueryHandler creates a handler for report queries.
func NewGetDeliveryReportQueryHandler(orders ports.OrderReader) GetDeliveryReportQueryHandler {
	return GetDeliveryReportQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetDeliveryReportQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReportQuery,
) (GetDeliveryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}

	resp := GetDeliveryReportQueryResponse{TotalOrders: len(all)}
	for _, o := range all {
		switch o.Status() {
		case order.Pending:
			resp.Pending++
		case order.Assigned:
			resp.Assigned++
		case order.Delivered:
			resp.Delivered++
		}
	}

	today, err := h.orders.GetDeliveredInWindow(ctx, timeutil.Today())
	if err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}
	resp.DeliveredToday = len(today)

	yesterday, err := h.orders.GetDeliveredInWindow(ctx, timeutil.Yesterday())
	if err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}
	resp.DeliveredYesterday = len(yesterday)

	return resp, nil
}
