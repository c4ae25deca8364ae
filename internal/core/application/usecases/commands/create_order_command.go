package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a shop's request to create a delivery order.
// Carries the shop identity and the delivery details typed in by the shop.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(shopID, "Sultoni Kabob | +992900000001",
//	    "+992901234567", "Dushanbe", "Rudaki 15", 120)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	shopID        kernel.UserID
	shopName      string
	customerPhone string
	city          string
	address       string
	paymentAmount float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the shop id is valid, text fields are not empty, and the
// payment amount is not negative.
func NewCreateOrderCommand(
	shopID kernel.UserID,
	shopName string,
	customerPhone string,
	city string,
	address string,
	paymentAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopID(shopID),
		cmd.setShopName(shopName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setCity(city),
		cmd.setAddress(address),
		cmd.setPaymentAmount(paymentAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ShopID returns the id of the shop placing the order.
func (c CreateOrderCommand) ShopID() kernel.UserID {
	return c.shopID
}

// ShopName returns the shop's display string.
func (c CreateOrderCommand) ShopName() string {
	return c.shopName
}

// CustomerPhone returns the customer's contact phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// City returns the destination city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// PaymentAmount returns the amount the courier collects on delivery.
func (c CreateOrderCommand) PaymentAmount() float64 {
	return c.paymentAmount
}

func (c *CreateOrderCommand) setShopID(shopID kernel.UserID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	c.shopID = shopID
	return nil
}

func (c *CreateOrderCommand) setShopName(shopName string) error {
	if shopName == "" {
		return errs.NewValueIsRequiredError("shop name")
	}

	c.shopName = shopName
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentAmount(paymentAmount float64) error {
	if paymentAmount < 0 {
		return errs.NewValueIsInvalidError("payment amount")
	}

	c.paymentAmount = paymentAmount
	return nil
}
