package domain

import (
	"fmt"
	"sort"
	"time"
)

// RecurrenceKind tag of the recurrence union
type RecurrenceKind string

const (
	RecurrenceNone    RecurrenceKind = "none"
	RecurrenceDaily   RecurrenceKind = "daily"
	RecurrenceWeekly  RecurrenceKind = "weekly"
	RecurrenceMonthly RecurrenceKind = "monthly"
)

var (
	// ErrInvalidRecurrence unknown kind or selector out of range
	ErrInvalidRecurrence = fmt.Errorf("%w: invalid recurrence pattern", ErrValidation)

	// ErrEmptySelector weekly or monthly pattern without selected days
	ErrEmptySelector = fmt.Errorf("%w: recurrence selector is empty", ErrValidation)

	// ErrRecurrenceSpan a recurring booking cannot span midnight
	ErrRecurrenceSpan = fmt.Errorf("%w: recurring booking must start and end on the same day", ErrValidation)

	// ErrRecurrenceEndDate ends-on date is missing or not after the first occurrence
	ErrRecurrenceEndDate = fmt.Errorf("%w: recurrence end date must be after the first occurrence", ErrValidation)
)

// RecurrencePattern "no recurrence" or one of daily, weekly(days), monthly(dates).
// Only the selector matching Kind is meaningful.
type RecurrencePattern struct {
	Kind      RecurrenceKind
	Weekdays  []time.Weekday
	MonthDays []int // 1..31
	EndsOn    *time.Time
}

// NoRecurrence returns the "none" pattern
func NoRecurrence() RecurrencePattern {
	return RecurrencePattern{Kind: RecurrenceNone}
}

// IsActive returns true for any pattern other than none
func (p RecurrencePattern) IsActive() bool {
	return p.Kind != "" && p.Kind != RecurrenceNone
}

// HasSelector returns true for patterns that own a selector set
func (p RecurrencePattern) HasSelector() bool {
	return p.Kind == RecurrenceWeekly || p.Kind == RecurrenceMonthly
}

// Validate checks the pattern shape without looking at any window
func (p RecurrencePattern) Validate() error {
	switch p.Kind {
	case "", RecurrenceNone, RecurrenceDaily:
		return nil
	case RecurrenceWeekly:
		if len(p.Weekdays) == 0 {
			return ErrEmptySelector
		}
		for _, d := range p.Weekdays {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("%w: weekday %d", ErrInvalidRecurrence, d)
			}
		}
		return nil
	case RecurrenceMonthly:
		if len(p.MonthDays) == 0 {
			return ErrEmptySelector
		}
		for _, d := range p.MonthDays {
			if d < 1 || d > 31 {
				return fmt.Errorf("%w: day of month %d", ErrInvalidRecurrence, d)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidRecurrence, p.Kind)
	}
}

// OnPatternSelected seeds the selector from startDate so the selection starts legal
func OnPatternSelected(kind RecurrenceKind, startDate time.Time) RecurrencePattern {
	p := RecurrencePattern{Kind: kind}
	switch kind {
	case RecurrenceWeekly:
		p.Weekdays = []time.Weekday{startDate.Weekday()}
	case RecurrenceMonthly:
		p.MonthDays = []int{startDate.Day()}
	}
	return p
}

// OnSelectorToggledOff removes item (weekday number or day of month). If the selector
// ends up empty it is re-seeded from startDate instead of being left empty.
func OnSelectorToggledOff(p RecurrencePattern, item int, startDate time.Time) RecurrencePattern {
	next := p.clone()

	switch p.Kind {
	case RecurrenceWeekly:
		kept := make([]time.Weekday, 0, len(next.Weekdays))
		for _, d := range next.Weekdays {
			if int(d) != item {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			kept = []time.Weekday{startDate.Weekday()}
		}
		next.Weekdays = kept
	case RecurrenceMonthly:
		kept := make([]int, 0, len(next.MonthDays))
		for _, d := range next.MonthDays {
			if d != item {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			kept = []int{startDate.Day()}
		}
		next.MonthDays = kept
	}

	return next
}

// OnSelectorToggledOn adds item to the selector, keeping it sorted and unique
func OnSelectorToggledOn(p RecurrencePattern, item int) RecurrencePattern {
	next := p.clone()

	switch p.Kind {
	case RecurrenceWeekly:
		for _, d := range next.Weekdays {
			if int(d) == item {
				return next
			}
		}
		next.Weekdays = append(next.Weekdays, time.Weekday(item))
		sort.Slice(next.Weekdays, func(i, j int) bool { return next.Weekdays[i] < next.Weekdays[j] })
	case RecurrenceMonthly:
		for _, d := range next.MonthDays {
			if d == item {
				return next
			}
		}
		next.MonthDays = append(next.MonthDays, item)
		sort.Ints(next.MonthDays)
	}

	return next
}

// ValidateSeriesWindow checks that window and pattern describe a legal series.
// The ends-on rule applies to new bookings only.
func ValidateSeriesWindow(window BookingWindow, p RecurrencePattern, isEdit bool) error {
	if !p.IsActive() {
		return nil
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if !window.SpansSingleDay() {
		return ErrRecurrenceSpan
	}

	if isEdit {
		return nil
	}

	if p.EndsOn == nil {
		return fmt.Errorf("%w: ends-on date is required", ErrRecurrenceEndDate)
	}
	if !p.EndsOn.After(window.End) {
		return ErrRecurrenceEndDate
	}

	return nil
}

func (p RecurrencePattern) clone() RecurrencePattern {
	next := RecurrencePattern{Kind: p.Kind, EndsOn: p.EndsOn}
	if p.Weekdays != nil {
		next.Weekdays = append([]time.Weekday(nil), p.Weekdays...)
	}
	if p.MonthDays != nil {
		next.MonthDays = append([]int(nil), p.MonthDays...)
	}
	return next
}
