// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the domain error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: bad user input, recoverable by re-prompting
//   - PermissionDeniedError: role or ownership check failed
//   - ObjectNotFoundError: a referenced id is absent
//   - InvalidTransitionError: an order is not in the expected state for the requested action
//   - HasActiveOrdersError: user deletion blocked by existing order references
//   - StorageError: I/O failure reading or writing persisted state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is works against the sentinel
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid is the sentinel for invalid values.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrObjectNotFound is the sentinel for lookups of absent objects.
	ErrObjectNotFound = errors.New("object not found")
	// ErrPermissionDenied is the sentinel for failed role or ownership checks.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidTransition is the sentinel for disallowed order status transitions.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrHasActiveOrders is the sentinel for deletions blocked by order references.
	ErrHasActiveOrders = errors.New("user has orders")
	// ErrStorage is the sentinel for persisted-state I/O failures.
	ErrStorage = errors.New("storage failure")
)

// ValueIsRequiredError indicates a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PermissionDeniedError indicates a caller is not allowed to perform an action.
type PermissionDeniedError struct {
	UserID int64
	Action string
}

// NewPermissionDeniedError creates a PermissionDeniedError for the given caller and action.
func NewPermissionDeniedError(userID int64, action string) *PermissionDeniedError {
	return &PermissionDeniedError{UserID: userID, Action: action}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: user %d may not %s", ErrPermissionDenied, e.UserID, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// InvalidTransitionError indicates an order was not in the expected status
// for the requested action.
type InvalidTransitionError struct {
	From   string
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current status and attempted action.
func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %q", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// HasActiveOrdersError indicates a user cannot be deleted because orders
// still reference them as shop or courier.
type HasActiveOrdersError struct {
	UserID int64
}

// NewHasActiveOrdersError creates a HasActiveOrdersError for the given user.
func NewHasActiveOrdersError(userID int64) *HasActiveOrdersError {
	return &HasActiveOrdersError{UserID: userID}
}

func (e *HasActiveOrdersError) Error() string {
	return fmt.Sprintf("%s: user %d is referenced by stored orders", ErrHasActiveOrders, e.UserID)
}

func (e *HasActiveOrdersError) Unwrap() error {
	return ErrHasActiveOrders
}

// StorageError indicates an I/O failure while reading or writing persisted state.
// The triggering operation is aborted and state is left at last-known-good.
type StorageError struct {
	Op    string
	Cause error
}

// NewStorageError creates a StorageError for the given operation and cause.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorage, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorage, e.Op)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}
