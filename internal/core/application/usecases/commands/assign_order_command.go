package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents an admin's request to hand a pending order
// to a courier.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	courierID   kernel.UserID
	courierName string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a courier.
func NewAssignOrderCommand(
	orderID kernel.OrderID,
	courierID kernel.UserID,
	courierName string,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourier(courierID, courierName),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CourierID returns the id of the courier receiving the order.
func (c AssignOrderCommand) CourierID() kernel.UserID {
	return c.courierID
}

// CourierName returns the courier's display string.
func (c AssignOrderCommand) CourierName() string {
	return c.courierName
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setCourier(courierID kernel.UserID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courier name")
	}

	c.courierID = courierID
	c.courierName = courierName
	return nil
}
