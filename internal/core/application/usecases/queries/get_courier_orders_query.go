package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders assigned to one courier.
// Pending orders have no courier, so they are never part of the result.
type GetCourierOrdersQuery struct {
	courierID kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's workload.
func NewGetCourierOrdersQuery(courierID kernel.UserID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are requested.
func (q GetCourierOrdersQuery) CourierID() kernel.UserID {
	return q.courierID
}
