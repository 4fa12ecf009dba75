package domain

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// TimeWindow business hours of a single day, both ends inclusive
type TimeWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains reports whether open <= t <= close
func (w TimeWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Open) && !t.IsAfter(w.Close)
}

// BusinessCalendar weekly opening hours of a branch.
// A weekday missing from Days is closed.
type BusinessCalendar struct {
	BranchID  int64
	HoursType string
	Days      map[time.Weekday]TimeWindow
}

// WindowFor returns the opening hours for a weekday
func (c BusinessCalendar) WindowFor(day time.Weekday) (TimeWindow, bool) {
	w, ok := c.Days[day]
	return w, ok
}

// IsWorkingDay returns true when the branch has hours on that weekday
func (c BusinessCalendar) IsWorkingDay(day time.Weekday) bool {
	_, ok := c.Days[day]
	return ok
}

// WorkingDays returns weekdays with defined hours, Sunday first
func (c BusinessCalendar) WorkingDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(c.Days))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// Holiday a branch-scoped non-working date
type Holiday struct {
	Date     time.Time
	Name     string
	Override *TimeWindow // optional opening hours for that date
}

// Holidays holiday list of one branch
type Holidays []Holiday

// Contains reports whether date is one of the holidays
func (h Holidays) Contains(date time.Time) bool {
	_, ok := h.Find(date)
	return ok
}

// Find returns the holiday that falls on date
func (h Holidays) Find(date time.Time) (Holiday, bool) {
	for _, holiday := range h {
		if SameDay(holiday.Date, date) {
			return holiday, true
		}
	}
	return Holiday{}, false
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}
