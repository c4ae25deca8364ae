// Package user provides the User aggregate and the role model for the three
// actor kinds of the system: shops that originate orders, couriers that
// fulfill them, and admins with full authority.
package user

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role is the actor role a user registered as. It is stored as its string
// form and is immutable once set, except through an explicit reset.
type Role string

const (
	// RoleShop originates delivery orders.
	RoleShop Role = "shop"
	// RoleCourier fulfills assigned orders.
	RoleCourier Role = "courier"
	// RoleAdmin has full read/write authority over orders, users, and whitelist.
	RoleAdmin Role = "admin"
)

// RoleFromString restores a Role from its persisted string form.
func RoleFromString(raw string) (Role, error) {
	role := Role(raw)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the Role is one of shop, courier, admin.
func (r Role) Validate() error {
	switch r {
	case RoleShop, RoleCourier, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
