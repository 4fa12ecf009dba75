package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

var (
	// ErrWindowInvalid end is not after start
	ErrWindowInvalid = fmt.Errorf("%w: booking window end must be after start", ErrValidation)

	// ErrWindowInPast booking starts before now
	ErrWindowInPast = fmt.Errorf("%w: booking window starts in the past", ErrValidation)

	// ErrDateNotSelectable date is closed, a holiday or an excluded weekend
	ErrDateNotSelectable = fmt.Errorf("%w: date is not selectable", ErrValidation)

	// ErrTimeNotSelectable time is outside business hours
	ErrTimeNotSelectable = fmt.Errorf("%w: time is not selectable", ErrValidation)

	// ErrBeyondHorizon date is after the advance-booking horizon
	ErrBeyondHorizon = fmt.Errorf("%w: date is beyond the advance booking horizon", ErrValidation)
)

// IsDateSelectable reports whether a booking may fall on date at the branch
func IsDateSelectable(date time.Time, calendar BusinessCalendar, policy OrganizationPolicy, holidays Holidays) bool {
	weekday := date.Weekday()

	if !calendar.IsWorkingDay(weekday) {
		return false
	}
	if policy.ExcludeHolidays && holidays.Contains(date) {
		return false
	}
	if policy.ExcludeWeekends && IsWeekend(weekday) {
		return false
	}
	return true
}

// IsTimeSelectable reports whether t on date is a legal start or end time.
// forceDisabled blacks out a value regardless of hours (past times today, end before start).
func IsTimeSelectable(t types.TimeString, date time.Time, calendar BusinessCalendar, forceDisabled bool, policy OrganizationPolicy) bool {
	if forceDisabled {
		return false
	}

	window, ok := calendar.WindowFor(date.Weekday())
	if !ok {
		return false
	}

	if !policy.IsTimeRestricted(calendar.BranchID) {
		return true
	}

	return window.Contains(t)
}

// TimeGrid returns times of day from 00:00 with the given step
func TimeGrid(stepMinutes int) []types.TimeString {
	if stepMinutes <= 0 {
		stepMinutes = SlotGridStepMinutes
	}
	grid := make([]types.TimeString, 0, 24*60/stepMinutes)
	for m := 0; m < 24*60; m += stepMinutes {
		t, _ := types.FromMinutes(m)
		grid = append(grid, t)
	}
	return grid
}

// SelectableDate a date picker value
type SelectableDate struct {
	Date       time.Time
	Selectable bool
	Holiday    *string
}

// SelectableTime a time picker value
type SelectableTime struct {
	Time       types.TimeString
	Selectable bool
}
