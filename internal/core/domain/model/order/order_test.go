package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCreatedAt   = "2025-03-14 10:00:00"
	testAssignedAt  = "2025-03-14 11:30:00"
	testDeliveredAt = "2025-03-14 15:45:00"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 150.0, testCreatedAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, kernel.OrderID(1), o.ID())
		assert.Equal(t, kernel.UserID(42), o.ShopID())
		assert.Equal(t, "ShopA", o.ShopName())
		assert.Equal(t, "+992900000000", o.CustomerPhone())
		assert.Equal(t, "Dushanbe", o.City())
		assert.Equal(t, "Rudaki 1", o.Address())
		assert.InEpsilon(t, 150.0, o.PaymentAmount(), 1e-9)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, testCreatedAt, o.CreatedAt())
		assert.Nil(t, o.Courier())
		assert.Empty(t, o.CourierName())
		assert.Empty(t, o.AssignedAt())
		assert.Empty(t, o.DeliveredAt())
		require.NoError(t, o.Validate())
	})

	t.Run("zero_payment_amount_is_allowed", func(t *testing.T) {
		o, err := order.NewOrder(2, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 0, testCreatedAt)

		require.NoError(t, err)
		assert.Zero(t, o.PaymentAmount())
	})

	t.Run("rejects_invalid_fields", func(t *testing.T) {
		tests := []struct {
			name string
			fn   func() (*order.Order, error)
		}{
			{"zero_order_id", func() (*order.Order, error) {
				return order.NewOrder(0, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 1, testCreatedAt)
			}},
			{"zero_shop_id", func() (*order.Order, error) {
				return order.NewOrder(1, 0, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 1, testCreatedAt)
			}},
			{"empty_shop_name", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "", "+992900000000", "Dushanbe", "Rudaki 1", 1, testCreatedAt)
			}},
			{"empty_phone", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "ShopA", "", "Dushanbe", "Rudaki 1", 1, testCreatedAt)
			}},
			{"empty_city", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "ShopA", "+992900000000", "", "Rudaki 1", 1, testCreatedAt)
			}},
			{"empty_address", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "", 1, testCreatedAt)
			}},
			{"negative_amount", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", -0.01, testCreatedAt)
			}},
			{"empty_created_at", func() (*order.Order, error) {
				return order.NewOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 1, "")
			}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.fn()
				require.Error(t, err)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("pending_order_is_assigned", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Assign(99, "Ali", testAssignedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, kernel.UserID(99), *o.Courier())
		assert.Equal(t, "Ali", o.CourierName())
		assert.Equal(t, testAssignedAt, o.AssignedAt())
		assert.True(t, o.BelongsToCourier(99))
		assert.False(t, o.BelongsToCourier(100))
	})

	t.Run("assigned_order_cannot_be_reassigned", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(99, "Ali", testAssignedAt))

		err := o.Assign(100, "Bob", testAssignedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		// Order is unchanged.
		assert.Equal(t, kernel.UserID(99), *o.Courier())
		assert.Equal(t, "Ali", o.CourierName())
	})

	t.Run("delivered_order_cannot_be_assigned", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(99, "Ali", testAssignedAt))
		require.NoError(t, o.MarkDelivered(testDeliveredAt))

		err := o.Assign(100, "Bob", testAssignedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects_invalid_courier", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.Assign(0, "Ali", testAssignedAt))
		require.Error(t, o.Assign(99, "", testAssignedAt))
		require.Error(t, o.Assign(99, "Ali", ""))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("assigned_order_is_delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(99, "Ali", testAssignedAt))

		err := o.MarkDelivered(testDeliveredAt)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, testDeliveredAt, o.DeliveredAt())
		// Courier reference survives delivery.
		require.NotNil(t, o.Courier())
		assert.Equal(t, kernel.UserID(99), *o.Courier())
	})

	t.Run("pending_order_cannot_be_delivered", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkDelivered(testDeliveredAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, o.DeliveredAt())
	})

	t.Run("delivered_order_cannot_be_delivered_again", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(99, "Ali", testAssignedAt))
		require.NoError(t, o.MarkDelivered(testDeliveredAt))

		err := o.MarkDelivered("2025-03-15 10:00:00")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, testDeliveredAt, o.DeliveredAt())
	})

	t.Run("timestamps_are_ordered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(99, "Ali", testAssignedAt))
		require.NoError(t, o.MarkDelivered(testDeliveredAt))

		assert.LessOrEqual(t, o.CreatedAt(), o.AssignedAt())
		assert.LessOrEqual(t, o.AssignedAt(), o.DeliveredAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	courierID := kernel.UserID(99)

	t.Run("restores_pending_order", func(t *testing.T) {
		o, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Pending, testCreatedAt, nil, "", "", "")

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		require.NoError(t, o.Validate())
	})

	t.Run("restores_delivered_order", func(t *testing.T) {
		o, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Delivered, testCreatedAt, &courierID, "Ali", testAssignedAt, testDeliveredAt)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, courierID, *o.Courier())
		assert.Equal(t, testDeliveredAt, o.DeliveredAt())
	})

	t.Run("rejects_pending_with_courier", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Pending, testCreatedAt, &courierID, "Ali", testAssignedAt, "")

		require.Error(t, err)
	})

	t.Run("rejects_assigned_without_courier", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Assigned, testCreatedAt, nil, "", testAssignedAt, "")

		require.Error(t, err)
	})

	t.Run("rejects_delivered_without_timestamp", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Delivered, testCreatedAt, &courierID, "Ali", testAssignedAt, "")

		require.Error(t, err)
	})

	t.Run("rejects_assigned_with_empty_courier_name", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Assigned, testCreatedAt, &courierID, "", testAssignedAt, "")

		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(1, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1",
			150, order.Unknown, testCreatedAt, nil, "", "", "")

		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b, err := order.NewOrder(1, 43, "ShopB", "+992911111111", "Khujand", "Lenina 5", 1, testCreatedAt)
	require.NoError(t, err)
	c, err := order.NewOrder(2, 42, "ShopA", "+992900000000", "Dushanbe", "Rudaki 1", 150, testCreatedAt)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
