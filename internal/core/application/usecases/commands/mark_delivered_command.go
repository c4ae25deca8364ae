package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a courier's claim that an order has been
// handed to the customer. The caller id is carried so the handler can verify
// the claim comes from the assigned courier.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	callerID kernel.UserID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete an order.
func NewMarkDeliveredCommand(orderID kernel.OrderID, callerID kernel.UserID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the id of the order being completed.
func (c MarkDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CallerID returns the id of the user claiming the delivery.
func (c MarkDeliveredCommand) CallerID() kernel.UserID {
	return c.callerID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setCallerID(callerID kernel.UserID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
