/*
errors.go - Centralized error types for the HR domain

PURPOSE:
  All error types in one place for consistency and discoverability.
  Reducers and services return these; the API layer maps them to HTTP
  statuses in a single switch.

ERROR CATEGORIES:
  1. Lookup errors - referenced entity does not exist
  2. Lifecycle errors - transition out of a terminal state
  3. Validation errors - bad input on create/update
  4. Bookkeeping errors - balance would go negative

USAGE:
  requests, err := leave.Approve(requests, "r1", review)
  if errors.Is(err, hrms.ErrAlreadyReviewed) {
      // surface "already reviewed" to the caller
  }

SEE ALSO:
  - leave/lifecycle.go: Returns RequestError
  - leave/balance.go: Returns InsufficientBalanceError
  - api/handlers.go: statusFor maps errors to HTTP statuses
*/
package hrms

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNotFound is returned when a referenced entity doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyReviewed is returned when approving or rejecting a request
	// that is no longer pending.
	ErrAlreadyReviewed = errors.New("leave request already reviewed")

	// ErrInsufficientBalance is returned when an approval would overdraw a balance.
	ErrInsufficientBalance = errors.New("insufficient leave balance")

	// ErrDuplicate is returned when a unique key (id, department name) is taken.
	ErrDuplicate = errors.New("duplicate")

	// ErrValidation is returned for malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden is returned when the acting user lacks a capability.
	ErrForbidden = errors.New("forbidden")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RequestError ties a lifecycle failure to the leave request it concerns.
type RequestError struct {
	ID     string
	Status LeaveStatus // current status, empty when the request was not found
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("leave request %s: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("leave request %s: %v (status: %s)", e.ID, e.Err, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// InsufficientBalanceError provides details about a balance shortage.
type InsufficientBalanceError struct {
	UserID    string
	LeaveType LeaveType
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance for user %s: available %d, requested %d",
		e.LeaveType, e.UserID, e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid is shorthand for a *ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError names what was looked up.
type NotFoundError struct {
	Kind string // "user", "department", "leave request"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateError names the taken key.
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Key)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// CapabilityError names the capability a role is missing.
type CapabilityError struct {
	Role       Role
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("role %s lacks capability %s", e.Role, e.Capability)
}

func (e *CapabilityError) Unwrap() error { return ErrForbidden }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict returns true if the error conflicts with current state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyReviewed) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrDuplicate)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || IsConflict(err) || IsNotFound(err)
}
