package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// SessionSnapshot calendar, holidays and policy loaded once when a booking session starts.
// It is never refreshed; a different branch needs a new session.
type SessionSnapshot struct {
	ID             string
	OrganizationID int64
	BranchID       int64
	DriverID       int64
	Calendar       BusinessCalendar
	Holidays       Holidays
	Policy         OrganizationPolicy
	LoadedAt       time.Time
}

// DateSelectable applies the date predicate plus "not before today" and the horizon
func (s *SessionSnapshot) DateSelectable(date, now time.Time) bool {
	return s.checkDate(date, now) == nil
}

// TimeSelectable applies the time predicate for the session's branch
func (s *SessionSnapshot) TimeSelectable(t types.TimeString, date time.Time, forceDisabled bool) bool {
	return IsTimeSelectable(t, date, s.Calendar, forceDisabled, s.Policy)
}

// CheckWindow validates both ends of a window against the snapshot
func (s *SessionSnapshot) CheckWindow(window BookingWindow, now time.Time) error {
	if !window.IsValid() {
		return ErrWindowInvalid
	}
	if !window.Start.After(now) {
		return ErrWindowInPast
	}

	for _, point := range []time.Time{window.Start, window.End} {
		if err := s.checkDate(point, now); err != nil {
			return err
		}
		if !s.TimeSelectable(types.NewTimeString(point), point, false) {
			return fmt.Errorf("%w: %s", ErrTimeNotSelectable, point.Format(DateTimeFormat))
		}
	}

	return nil
}

func (s *SessionSnapshot) checkDate(date, now time.Time) error {
	day := StartOfDay(date)

	if day.Before(StartOfDay(now)) {
		return fmt.Errorf("%w: %s", ErrWindowInPast, date.Format(DateFormat))
	}
	if maxDate, limited := s.Policy.MaxBookingDate(now); limited && day.After(maxDate) {
		return fmt.Errorf("%w: last bookable date is %s", ErrBeyondHorizon, maxDate.Format(DateFormat))
	}
	if !IsDateSelectable(date, s.Calendar, s.Policy, s.Holidays) {
		return fmt.Errorf("%w: %s", ErrDateNotSelectable, date.Format(DateFormat))
	}
	return nil
}
