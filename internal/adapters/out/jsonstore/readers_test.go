package jsonstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// seedOrders fills the store with one order per lifecycle stage:
// pending #1 (shop 100), assigned #2 (shop 100, courier 200),
// delivered #3 (shop 101, courier 200, delivered 2026-03-01 18:30:00).
func seedOrders(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	uow := NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))

	pending := newPendingOrder(t, 1, 100, "2026-03-01 11:00:00")
	require.NoError(t, uow.OrderRepository().Add(ctx, pending))

	assigned := newPendingOrder(t, 2, 100, "2026-03-01 12:00:00")
	require.NoError(t, assigned.Assign(mustUserID(t, 200), "Farrukh | +992900000002", "2026-03-01 13:00:00"))
	require.NoError(t, uow.OrderRepository().Add(ctx, assigned))

	delivered := newPendingOrder(t, 3, 101, "2026-03-01 14:00:00")
	require.NoError(t, delivered.Assign(mustUserID(t, 200), "Farrukh | +992900000002", "2026-03-01 15:00:00"))
	require.NoError(t, delivered.MarkDelivered("2026-03-01 18:30:00"))
	require.NoError(t, uow.OrderRepository().Add(ctx, delivered))

	require.NoError(t, uow.Commit(ctx))
}

func orderIDs(orders []*order.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID().Int64())
	}
	return ids
}

func Test_OrderReader(t *testing.T) {
	ctx := context.Background()

	t.Run("get all returns every order", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedOrders(t, store)

		// When
		orders, err := NewOrderReader(store).GetAll(ctx)

		// Then
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2, 3}, orderIDs(orders))
	})

	t.Run("pending filter excludes assigned and delivered", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedOrders(t, store)

		// When
		orders, err := NewOrderReader(store).GetAllInPendingStatus(ctx)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, orderIDs(orders))
	})

	t.Run("shop filter returns only that shop's orders", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedOrders(t, store)

		// When
		orders, err := NewOrderReader(store).GetAllByShop(ctx, mustUserID(t, 100))

		// Then
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2}, orderIDs(orders))
	})

	t.Run("courier filter never returns pending orders", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedOrders(t, store)

		// When
		orders, err := NewOrderReader(store).GetAllByCourier(ctx, mustUserID(t, 200))

		// Then
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, orderIDs(orders))
		for _, o := range orders {
			assert.NotEqual(t, order.Pending, o.Status())
		}
	})

	t.Run("delivered window matches by timestamp prefix", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedOrders(t, store)
		reader := NewOrderReader(store)

		// When / Then
		day, err := reader.GetDeliveredInWindow(ctx, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, orderIDs(day))

		otherDay, err := reader.GetDeliveredInWindow(ctx, "2026-03-02")
		require.NoError(t, err)
		assert.Empty(t, otherDay)

		hour, err := reader.GetDeliveredInWindow(ctx, "2026-03-01 18")
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, orderIDs(hour))
	})

	t.Run("filters return empty slices on an empty store", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		reader := NewOrderReader(store)

		// When
		orders, err := reader.GetAllInPendingStatus(ctx)

		// Then
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func Test_UserReader(t *testing.T) {
	ctx := context.Background()

	seedUsers := func(t *testing.T, store *Store) {
		t.Helper()

		uow := NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.UserRepository().Add(ctx, newShopUser(t, 100)))

		courier, err := user.NewUser(mustUserID(t, 200), "Farrukh | +992900000002",
			user.RoleCourier, "2026-03-01 09:00:00")
		require.NoError(t, err)
		require.NoError(t, uow.UserRepository().Add(ctx, courier))
		require.NoError(t, uow.Commit(ctx))
	}

	t.Run("get returns the stored user", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedUsers(t, store)

		// When
		got, err := NewUserReader(store).Get(ctx, mustUserID(t, 200))

		// Then
		require.NoError(t, err)
		assert.Equal(t, user.RoleCourier, got.Role())
		assert.Equal(t, "Farrukh | +992900000002", got.DisplayName())
	})

	t.Run("get returns ObjectNotFound for an unknown id", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedUsers(t, store)

		// When
		_, err := NewUserReader(store).Get(ctx, mustUserID(t, 999))

		// Then
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("role filter separates shops from couriers", func(t *testing.T) {
		// Given
		store := newTestStore(t)
		seedUsers(t, store)
		reader := NewUserReader(store)

		// When
		shops, err := reader.GetAllByRole(ctx, user.RoleShop)
		require.NoError(t, err)
		couriers, err := reader.GetAllByRole(ctx, user.RoleCourier)
		require.NoError(t, err)

		// Then
		require.Len(t, shops, 1)
		assert.Equal(t, int64(100), shops[0].ID().Int64())
		require.Len(t, couriers, 1)
		assert.Equal(t, int64(200), couriers[0].ID().Int64())
	})
}
