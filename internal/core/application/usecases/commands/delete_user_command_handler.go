package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// DeleteUserCommandHandler removes a registered user.
//
// A user referenced by any order, in any status, cannot be deleted: order
// history must stay attributable. The existence check and the delete happen
// in the same transaction, so an order created concurrently cannot slip in
// between them.
type DeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	referenced, err := uow.OrderRepository().ExistsForUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewHasActiveOrdersError(cmd.UserID().Int64())
	}

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
