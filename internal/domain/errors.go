package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrVehicleNotFound is returned when a vehicle is not found
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")

	// ErrRentalNotFound is returned when a rental is not found
	ErrRentalNotFound = errors.New("rental not found")

	// ErrBackupNotFound is returned when no usable rental backup exists
	ErrBackupNotFound = errors.New("rental backup not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrNoActiveOwner is returned when a vehicle has an ownership history but
	// no record with a NULL valid_to
	ErrNoActiveOwner = errors.New("no active ownership record")
)

// ValidationError is returned before any write when input is rejected.
// It accumulates every violation so the caller sees all of them at once,
// not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// NewValidationError creates a ValidationError from one or more violations
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IntegrityError is returned when an invariant the system relies on was
// violated (multi-row mutation, more or less than one active ownership row).
// It is fatal for the operation; the surrounding transaction is rolled back.
type IntegrityError struct {
	Invariant string
	Detail    string
}

func (e *IntegrityError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("integrity violation: %s", e.Invariant)
	}
	return fmt.Sprintf("integrity violation: %s (%s)", e.Invariant, e.Detail)
}

// NewIntegrityError creates an IntegrityError for a named invariant
func NewIntegrityError(invariant string, detail string) *IntegrityError {
	return &IntegrityError{Invariant: invariant, Detail: detail}
}

// IsIntegrity reports whether err is (or wraps) an IntegrityError
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
