package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveredOrdersQuery must be created via NewGetDeliveredOrdersQuery constructor",
)

// GetDeliveredOrdersQuery retrieves delivered orders whose delivery
// timestamp starts with the given window prefix. A date prefix like
// "2026-03-01" selects one day; longer prefixes narrow the window down to
// an hour or a minute.
type GetDeliveredOrdersQuery struct {
	window string

	guard guard.ConstructorGuard
}

// NewGetDeliveredOrdersQuery creates a query for deliveries in a window.
func NewGetDeliveredOrdersQuery(window string) (GetDeliveredOrdersQuery, error) {
	if window == "" {
		return GetDeliveredOrdersQuery{}, errs.NewValueIsRequiredError("window")
	}

	return GetDeliveredOrdersQuery{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredOrdersQueryIsNotConstructed)
}

// Window returns the timestamp prefix to match.
func (q GetDeliveredOrdersQuery) Window() string {
	return q.window
}
