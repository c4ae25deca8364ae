// Package kernel contains shared value objects used across domain aggregates.
package kernel

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// UserID identifies an actor by their external chat identity.
// A valid UserID is strictly positive.
type UserID int64

// NewUserID creates a validated UserID from a raw identifier.
func NewUserID(raw int64) (UserID, error) {
	id := UserID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseUserID creates a validated UserID from its decimal string form.
func ParseUserID(raw string) (UserID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	return NewUserID(value)
}

// Validate checks that the UserID is strictly positive.
func (id UserID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not positive", int64(id)))
	}
	return nil
}

// Int64 returns the raw identifier value.
func (id UserID) Int64() int64 {
	return int64(id)
}

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OrderID identifies an order. Order ids are allocated from a single
// monotonic counter and never reused.
type OrderID int64

// NewOrderID creates a validated OrderID from a raw identifier.
func NewOrderID(raw int64) (OrderID, error) {
	id := OrderID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseOrderID creates a validated OrderID from its decimal string form.
func ParseOrderID(raw string) (OrderID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return NewOrderID(value)
}

// Validate checks that the OrderID is strictly positive.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not positive", int64(id)))
	}
	return nil
}

// Int64 returns the raw identifier value.
func (id OrderID) Int64() int64 {
	return int64(id)
}

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
