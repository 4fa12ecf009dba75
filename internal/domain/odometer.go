package domain

import (
	"fmt"
	"math"
)

// ErrInvalidOdometer reading is negative or not a number
var ErrInvalidOdometer = fmt.Errorf("%w: invalid odometer reading", ErrValidation)

// OdometerDeviationCheck compares a proposed reading with the previous one
type OdometerDeviationCheck struct {
	Previous  float64
	Proposed  float64
	Tolerance float64
}

// DeviationOutcome WithinTolerance or RequiresConfirmation(Deviation)
type DeviationOutcome struct {
	RequiresConfirmation bool
	Deviation            float64
}

// Evaluate computes (proposed - previous) / previous. Both bounds are inclusive:
// exactly +/- tolerance requires confirmation. A previous reading <= 0 has no
// baseline and never requires confirmation.
func (c OdometerDeviationCheck) Evaluate() DeviationOutcome {
	tolerance := c.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultOdometerTolerance
	}

	if c.Previous <= 0 {
		return DeviationOutcome{}
	}

	deviation := (c.Proposed - c.Previous) / c.Previous
	if deviation >= tolerance || deviation <= -tolerance {
		return DeviationOutcome{RequiresConfirmation: true, Deviation: deviation}
	}
	return DeviationOutcome{Deviation: deviation}
}

// ValidateOdometer rejects negative and non-finite readings
func ValidateOdometer(reading float64) error {
	if math.IsNaN(reading) || math.IsInf(reading, 0) || reading < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOdometer, reading)
	}
	return nil
}

// GateOdometer runs the deviation gate unless bypass is set or no reading is proposed.
// It returns the reading to record: the proposed one, or previous when none is proposed.
func GateOdometer(previous float64, proposed *float64, tolerance float64, bypass bool) (float64, error) {
	if proposed == nil {
		return previous, nil
	}
	if err := ValidateOdometer(*proposed); err != nil {
		return 0, err
	}
	if bypass {
		return *proposed, nil
	}

	outcome := OdometerDeviationCheck{Previous: previous, Proposed: *proposed, Tolerance: tolerance}.Evaluate()
	if outcome.RequiresConfirmation {
		return 0, &DeviationConfirmationRequiredError{Deviation: outcome.Deviation}
	}
	return *proposed, nil
}
