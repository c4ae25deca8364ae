package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with strictly forward transitions:
//
//	Pending ──> Assigned ──> Delivered
//
// There is no reassignment, no un-assignment, and no cancellation.
// Status is a value object that validates state transitions and provides
// the string representation used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a courier.
	Pending

	// Assigned indicates the order has been handed to a courier.
	Assigned

	// Delivered indicates the order reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

const (
	pendingName   = "pending"
	assignedName  = "assigned"
	deliveredName = "delivered"
	unknownName   = "unknown"
)

// StatusFromString restores a Status from its persisted string form.
// Returns an error for any value outside the known set.
func StatusFromString(raw string) (Status, error) {
	switch raw {
	case pendingName:
		return Pending, nil
	case assignedName:
		return Assigned, nil
	case deliveredName:
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", raw))
	}
}

// Validate checks that the Status is one of Pending, Assigned, Delivered.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	switch s {
	case Pending:
		return pendingName
	case Assigned:
		return assignedName
	case Delivered:
		return deliveredName
	default:
		return unknownName
	}
}

// Assign transitions the status to Assigned.
//
// The only valid source status is Pending. Assigning an already assigned or
// delivered order fails: couriers are never silently swapped.
//
// Returns (Assigned, nil) on a valid transition, or (0, InvalidTransitionError)
// otherwise.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), "assign")
	}
	return Assigned, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid source status is Assigned. Delivered is terminal.
//
// Returns (Delivered, nil) on a valid transition, or (0, InvalidTransitionError)
// otherwise.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), "deliver")
	}
	return Delivered, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier reference exists exactly when the order is
// Assigned or Delivered.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}
	if !courier && (s == Assigned || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}
	return nil
}
