package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnPatternSelected(t *testing.T) {
	weekly := OnPatternSelected(RecurrenceWeekly, wednesday)
	assert.Equal(t, []time.Weekday{time.Wednesday}, weekly.Weekdays)

	monthly := OnPatternSelected(RecurrenceMonthly, wednesday)
	assert.Equal(t, []int{4}, monthly.MonthDays)

	daily := OnPatternSelected(RecurrenceDaily, wednesday)
	assert.Empty(t, daily.Weekdays)
	assert.Empty(t, daily.MonthDays)
}

func TestOnSelectorToggledOff_ReseedsWhenEmptied(t *testing.T) {
	p := OnPatternSelected(RecurrenceWeekly, wednesday)

	next := OnSelectorToggledOff(p, int(time.Wednesday), wednesday)

	assert.Equal(t, []time.Weekday{time.Wednesday}, next.Weekdays)
}

func TestOnSelectorToggledOff_ReseedsFromStartDateNotRemovedItem(t *testing.T) {
	p := RecurrencePattern{Kind: RecurrenceWeekly, Weekdays: []time.Weekday{time.Monday}}

	next := OnSelectorToggledOff(p, int(time.Monday), wednesday)

	assert.Equal(t, []time.Weekday{time.Wednesday}, next.Weekdays)
}

func TestOnSelectorToggledOff_RemovesItem(t *testing.T) {
	p := RecurrencePattern{Kind: RecurrenceMonthly, MonthDays: []int{1, 4, 15}}

	next := OnSelectorToggledOff(p, 4, wednesday)

	assert.Equal(t, []int{1, 15}, next.MonthDays)
	assert.Equal(t, []int{1, 4, 15}, p.MonthDays, "input pattern is not mutated")
}

func TestOnSelectorToggledOff_MonthlyReseed(t *testing.T) {
	p := RecurrencePattern{Kind: RecurrenceMonthly, MonthDays: []int{20}}

	next := OnSelectorToggledOff(p, 20, wednesday)

	assert.Equal(t, []int{4}, next.MonthDays)
}

func TestOnSelectorToggledOn(t *testing.T) {
	p := OnPatternSelected(RecurrenceWeekly, wednesday)

	next := OnSelectorToggledOn(p, int(time.Monday))
	next = OnSelectorToggledOn(next, int(time.Monday))

	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, next.Weekdays)
}

func TestValidateSeriesWindow(t *testing.T) {
	weekly := RecurrencePattern{Kind: RecurrenceWeekly, Weekdays: []time.Weekday{time.Wednesday}}
	sameDay := BookingWindow{Start: at(2026, 3, 4, 9, 0), End: at(2026, 3, 4, 12, 0)}
	overnight := BookingWindow{Start: at(2026, 3, 4, 22, 0), End: at(2026, 3, 5, 6, 0)}
	endsLater := date(2026, time.April, 1)
	endsSameDay := date(2026, time.March, 4)

	tests := []struct {
		name    string
		window  BookingWindow
		pattern RecurrencePattern
		isEdit  bool
		wantErr error
	}{
		{name: "no recurrence may span midnight", window: overnight, pattern: NoRecurrence()},
		{name: "weekly same day with end date", window: sameDay, pattern: withEnd(weekly, &endsLater)},
		{name: "weekly spanning midnight", window: overnight, pattern: withEnd(weekly, &endsLater), wantErr: ErrRecurrenceSpan},
		{name: "missing end date on new booking", window: sameDay, pattern: weekly, wantErr: ErrRecurrenceEndDate},
		{name: "end date not after first occurrence", window: sameDay, pattern: withEnd(weekly, &endsSameDay), wantErr: ErrRecurrenceEndDate},
		{name: "edit skips end date rule", window: sameDay, pattern: weekly, isEdit: true},
		{name: "edit still checks span", window: overnight, pattern: weekly, isEdit: true, wantErr: ErrRecurrenceSpan},
		{
			name:    "empty selector",
			window:  sameDay,
			pattern: RecurrencePattern{Kind: RecurrenceWeekly, EndsOn: &endsLater},
			wantErr: ErrEmptySelector,
		},
		{
			name:    "day of month out of range",
			window:  sameDay,
			pattern: RecurrencePattern{Kind: RecurrenceMonthly, MonthDays: []int{32}, EndsOn: &endsLater},
			wantErr: ErrInvalidRecurrence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeriesWindow(tt.window, tt.pattern, tt.isEdit)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func withEnd(p RecurrencePattern, endsOn *time.Time) RecurrencePattern {
	p.EndsOn = endsOn
	return p
}
