package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves the orders placed by one shop.
type GetShopOrdersQuery struct {
	shopID kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a shop's order history.
func NewGetShopOrdersQuery(shopID kernel.UserID) (GetShopOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return GetShopOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopID returns the shop whose orders are requested.
func (q GetShopOrdersQuery) ShopID() kernel.UserID {
	return q.shopID
}
