package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Package-level sentinels wrap one of these
// so handlers can map a failure to a response without knowing the operation.
var (
	// ErrValidation local input problem, no network call was attempted
	ErrValidation = errors.New("validation error")

	// ErrConflict driver has overlapping active bookings
	ErrConflict = errors.New("driver has conflicting bookings")

	// ErrDeviationConfirmationRequired odometer reading needs explicit confirmation
	ErrDeviationConfirmationRequired = errors.New("odometer deviation requires confirmation")

	// ErrTransport backend or network failure on a fetch or transition
	ErrTransport = errors.New("transport error")

	// ErrPolicyViolation operation is not allowed by organization policy or booking state
	ErrPolicyViolation = errors.New("policy violation")
)

// ConflictError carries the conflicting bookings so the caller can explain the block.
type ConflictError struct {
	Conflicts []DriverBookingConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d overlapping booking(s)", ErrConflict, len(e.Conflicts))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// DeviationConfirmationRequiredError carries the deviation to present to the user.
type DeviationConfirmationRequiredError struct {
	Deviation float64
}

func (e *DeviationConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s: deviation %.2f%%", ErrDeviationConfirmationRequired, e.Deviation*100)
}

func (e *DeviationConfirmationRequiredError) Is(target error) bool {
	return target == ErrDeviationConfirmationRequired
}
