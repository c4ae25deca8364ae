package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Pending, "pending"},
		{order.Assigned, "assigned"},
		{order.Delivered, "delivered"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for raw, want := range map[string]order.Status{
			"pending":   order.Pending,
			"assigned":  order.Assigned,
			"delivered": order.Delivered,
		} {
			got, err := order.StatusFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := order.StatusFromString("cancelled")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_status", func(t *testing.T) {
		_, err := order.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Assigned.Validate())
	require.NoError(t, order.Delivered.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending_becomes_assigned", func(t *testing.T) {
		next, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("assigned_cannot_be_reassigned", func(t *testing.T) {
		_, err := order.Assigned.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("delivered_cannot_be_assigned", func(t *testing.T) {
		_, err := order.Delivered.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown_cannot_be_assigned", func(t *testing.T) {
		_, err := order.Unknown.Assign()
		require.Error(t, err)
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("assigned_becomes_delivered", func(t *testing.T) {
		next, err := order.Assigned.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("pending_cannot_be_delivered", func(t *testing.T) {
		_, err := order.Pending.Deliver()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		_, err := order.Delivered.Deliver()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		courier bool
		wantErr bool
	}{
		{"pending_without_courier", order.Pending, false, false},
		{"pending_with_courier", order.Pending, true, true},
		{"assigned_with_courier", order.Assigned, true, false},
		{"assigned_without_courier", order.Assigned, false, true},
		{"delivered_with_courier", order.Delivered, true, false},
		{"delivered_without_courier", order.Delivered, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.ValidateCanHaveCourier(tc.courier)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
