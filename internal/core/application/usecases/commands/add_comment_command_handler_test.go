package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCommentCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddCommentCommand(mustOrderID(t, 1), mustUserID(t, 200),
		"customer asked to call before arriving")
	require.NoError(t, err)

	target := assignedOrder(t, 1, 200)
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 1)).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
		payload, ok := e.Payload.(events.OrderCommentPayload)
		return ok && e.Type == events.EventOrderComment &&
			payload.Text == "customer asked to call before arriving"
	})).Once()

	h := commands.NewAddCommentCommandHandler(factory, dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))

	// Nothing is persisted for a comment.
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertExpectations(t)
}

func TestAddCommentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddCommentCommand(mustOrderID(t, 42), mustUserID(t, 200), "text")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 42)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	h := commands.NewAddCommentCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	dispatcher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewAddCommentCommand_EmptyText(t *testing.T) {
	_, err := commands.NewAddCommentCommand(mustOrderID(t, 1), mustUserID(t, 200), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
