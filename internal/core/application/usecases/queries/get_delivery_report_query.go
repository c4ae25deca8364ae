package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryReportQueryIsNotConstructed = errors.New(
	"GetDeliveryReportQuery must be created via NewGetDeliveryReportQuery constructor",
)

// GetDeliveryReportQuery retrieves the admin summary: order counts by status
// plus delivery totals for today and yesterday, both in Dushanbe time.
type GetDeliveryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryReportQuery creates a query for the delivery report.
func NewGetDeliveryReportQuery() GetDeliveryReportQuery {
	return GetDeliveryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReportQueryIsNotConstructed)
}

// GetDeliveryReportQueryResponse is the report body.
type GetDeliveryReportQueryResponse struct {
	TotalOrders        int `json:"total_orders"`
	Pending            int `json:"pending"`
	Assigned           int `json:"assigned"`
	Delivered          int `json:"delivered"`
	DeliveredToday     int `json:"delivered_today"`
	DeliveredYesterday int `json:"delivered_yesterday"`
}
