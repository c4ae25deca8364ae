package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAddCommentCommandIsNotConstructed = errors.New(
	"AddCommentCommand must be created via NewAddCommentCommand constructor",
)

// AddCommentCommand represents a courier's free-text note about an order.
// Comments are relayed to the admins, not stored with the order.
type AddCommentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	authorID kernel.UserID
	text     string

	guard guard.ConstructorGuard
}

// NewAddCommentCommand creates a command to comment on an order.
func NewAddCommentCommand(
	orderID kernel.OrderID,
	authorID kernel.UserID,
	text string,
) (AddCommentCommand, error) {
	cmd := AddCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAuthorID(authorID),
		cmd.setText(text),
	); err != nil {
		return AddCommentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

// OrderID returns the id of the commented order.
func (c AddCommentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// AuthorID returns the id of the commenting user.
func (c AddCommentCommand) AuthorID() kernel.UserID {
	return c.authorID
}

// Text returns the comment body.
func (c AddCommentCommand) Text() string {
	return c.text
}

func (c *AddCommentCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCommentCommand) setAuthorID(authorID kernel.UserID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}

func (c *AddCommentCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("comment text")
	}

	c.text = text
	return nil
}
