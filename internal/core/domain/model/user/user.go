package user

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents a registered actor. The id is the external chat identity;
// the display name carries the registration data (for shops and couriers a
// composite "name | phone" string).
//
// Users are created by the registration flow and deleted only by admin
// action, and only while no stored order references them.
type User struct {
	id          kernel.UserID
	displayName string
	role        Role
	registered  string

	guard guard.ConstructorGuard
}

// NewUser creates a validated User.
//
// Parameters:
//   - id: external chat identity, strictly positive
//   - displayName: non-empty display string
//   - role: shop, courier, or admin
//   - registeredAt: registration timestamp in the persisted layout
func NewUser(id kernel.UserID, displayName string, role Role, registeredAt string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setDisplayName(displayName),
		u.setRole(role),
		u.setRegisteredAt(registeredAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's external chat identity.
func (u *User) ID() kernel.UserID {
	return u.id
}

// DisplayName returns the registration display string.
func (u *User) DisplayName() string {
	return u.displayName
}

// Role returns the role the user registered as.
func (u *User) Role() Role {
	return u.role
}

// RegisteredAt returns the registration timestamp.
func (u *User) RegisteredAt() string {
	return u.registered
}

func (u *User) setID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setDisplayName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("display name")
	}
	u.displayName = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setRegisteredAt(registeredAt string) error {
	if registeredAt == "" {
		return errs.NewValueIsRequiredError("registered at")
	}
	u.registered = registeredAt
	return nil
}
