package user_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("valid_roles", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleShop, user.RoleCourier, user.RoleAdmin} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("invalid_role", func(t *testing.T) {
		err := user.Role("manager").Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("from_string", func(t *testing.T) {
		role, err := user.RoleFromString("courier")
		require.NoError(t, err)
		assert.Equal(t, user.RoleCourier, role)

		_, err = user.RoleFromString("")
		require.Error(t, err)
	})

	t.Run("string_form", func(t *testing.T) {
		assert.Equal(t, "shop", user.RoleShop.String())
		assert.Equal(t, "courier", user.RoleCourier.String())
		assert.Equal(t, "admin", user.RoleAdmin.String())
	})
}

func TestNewUser(t *testing.T) {
	t.Run("creates_valid_user", func(t *testing.T) {
		u, err := user.NewUser(42, "ShopA | +992900000000", user.RoleShop, "2025-03-14 10:00:00")

		require.NoError(t, err)
		assert.Equal(t, kernel.UserID(42), u.ID())
		assert.Equal(t, "ShopA | +992900000000", u.DisplayName())
		assert.Equal(t, user.RoleShop, u.Role())
		assert.Equal(t, "2025-03-14 10:00:00", u.RegisteredAt())
		require.NoError(t, u.Validate())
	})

	t.Run("rejects_invalid_fields", func(t *testing.T) {
		_, err := user.NewUser(0, "name", user.RoleShop, "2025-03-14 10:00:00")
		require.Error(t, err)

		_, err = user.NewUser(42, "", user.RoleShop, "2025-03-14 10:00:00")
		require.Error(t, err)

		_, err = user.NewUser(42, "name", user.Role("boss"), "2025-03-14 10:00:00")
		require.Error(t, err)

		_, err = user.NewUser(42, "name", user.RoleShop, "")
		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero_value_user_is_invalid", func(t *testing.T) {
		var u user.User
		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})

	t.Run("nil_user_is_invalid", func(t *testing.T) {
		var u *user.User
		require.Error(t, u.Validate())
	})
}
