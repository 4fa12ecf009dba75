package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

func TestOdometerDeviationCheck_Evaluate(t *testing.T) {
	tests := []struct {
		name          string
		check         OdometerDeviationCheck
		wantConfirm   bool
		wantDeviation float64
	}{
		{name: "exactly +10% requires confirmation", check: OdometerDeviationCheck{Previous: 1000, Proposed: 1100, Tolerance: 0.10}, wantConfirm: true, wantDeviation: 0.10},
		{name: "just below +10%", check: OdometerDeviationCheck{Previous: 1000, Proposed: 1099, Tolerance: 0.10}, wantDeviation: 0.099},
		{name: "exactly -10% requires confirmation", check: OdometerDeviationCheck{Previous: 1000, Proposed: 900, Tolerance: 0.10}, wantConfirm: true, wantDeviation: -0.10},
		{name: "unchanged", check: OdometerDeviationCheck{Previous: 1000, Proposed: 1000, Tolerance: 0.10}},
		{name: "default tolerance", check: OdometerDeviationCheck{Previous: 1000, Proposed: 1200}, wantConfirm: true, wantDeviation: 0.20},
		{name: "no baseline", check: OdometerDeviationCheck{Previous: 0, Proposed: 5000, Tolerance: 0.10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check.Evaluate()
			assert.Equal(t, tt.wantConfirm, got.RequiresConfirmation)
			assert.InDelta(t, tt.wantDeviation, got.Deviation, 1e-9)
		})
	}
}

func TestGateOdometer(t *testing.T) {
	t.Run("absent reading carries previous forward", func(t *testing.T) {
		reading, err := GateOdometer(1000, nil, 0.10, false)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, reading)
	})

	t.Run("within tolerance", func(t *testing.T) {
		reading, err := GateOdometer(1000, ptr.Ptr(1050.0), 0.10, false)
		require.NoError(t, err)
		assert.Equal(t, 1050.0, reading)
	})

	t.Run("requires confirmation", func(t *testing.T) {
		_, err := GateOdometer(1000, ptr.Ptr(1100.0), 0.10, false)
		require.ErrorIs(t, err, ErrDeviationConfirmationRequired)

		var gateErr *DeviationConfirmationRequiredError
		require.True(t, errors.As(err, &gateErr))
		assert.InDelta(t, 0.10, gateErr.Deviation, 1e-9)
	})

	t.Run("bypass skips evaluation", func(t *testing.T) {
		reading, err := GateOdometer(1000, ptr.Ptr(5000.0), 0.10, true)
		require.NoError(t, err)
		assert.Equal(t, 5000.0, reading)
	})

	t.Run("negative reading rejected even with bypass", func(t *testing.T) {
		_, err := GateOdometer(1000, ptr.Ptr(-1.0), 0.10, true)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NaN rejected", func(t *testing.T) {
		_, err := GateOdometer(1000, ptr.Ptr(math.NaN()), 0.10, false)
		assert.ErrorIs(t, err, ErrInvalidOdometer)
	})
}
