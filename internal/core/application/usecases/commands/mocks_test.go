package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/events"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsForUser(ctx context.Context, id kernel.UserID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UserID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Publish(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

func (m *MockDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {
	m.Called(eventType, handler)
}

func mustUserID(t *testing.T, raw int64) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(raw)
	require.NoError(t, err)
	return id
}

func mustOrderID(t *testing.T, raw int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(raw)
	require.NoError(t, err)
	return id
}

func pendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustOrderID(t, id), mustUserID(t, 100), "Sultoni Kabob",
		"+992900000001", "Dushanbe", "Rudaki 15", 120, "2026-03-01 11:00:00")
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, id int64, courierID int64) *order.Order {
	t.Helper()
	o := pendingOrder(t, id)
	require.NoError(t, o.Assign(mustUserID(t, courierID), "Farrukh | +992900000002", "2026-03-01 12:00:00"))
	return o
}
