package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionSnapshot_CheckWindow(t *testing.T) {
	now := at(2026, 3, 2, 8, 0) // Monday
	snapshot := &SessionSnapshot{
		BranchID: testBranchID,
		Calendar: weekdayCalendar(),
		Holidays: Holidays{{Date: date(2026, time.March, 5), Name: "Branch anniversary"}},
		Policy: OrganizationPolicy{
			MaxAdvanceMonths:     1,
			ExcludeHolidays:      true,
			TimeWindowRestricted: true,
		},
	}

	tests := []struct {
		name    string
		window  BookingWindow
		wantErr error
	}{
		{name: "valid", window: BookingWindow{Start: at(2026, 3, 4, 9, 0), End: at(2026, 3, 4, 17, 0)}},
		{name: "multi-day", window: BookingWindow{Start: at(2026, 3, 3, 16, 0), End: at(2026, 3, 4, 10, 0)}},
		{name: "reversed", window: BookingWindow{Start: at(2026, 3, 4, 12, 0), End: at(2026, 3, 4, 9, 0)}, wantErr: ErrWindowInvalid},
		{name: "in the past", window: BookingWindow{Start: at(2026, 3, 2, 7, 0), End: at(2026, 3, 2, 10, 0)}, wantErr: ErrWindowInPast},
		{name: "holiday", window: BookingWindow{Start: at(2026, 3, 5, 9, 0), End: at(2026, 3, 5, 10, 0)}, wantErr: ErrDateNotSelectable},
		{name: "weekend end", window: BookingWindow{Start: at(2026, 3, 6, 9, 0), End: at(2026, 3, 7, 10, 0)}, wantErr: ErrDateNotSelectable},
		{name: "before opening", window: BookingWindow{Start: at(2026, 3, 4, 8, 45), End: at(2026, 3, 4, 10, 0)}, wantErr: ErrTimeNotSelectable},
		{name: "beyond horizon", window: BookingWindow{Start: at(2026, 4, 6, 9, 0), End: at(2026, 4, 6, 10, 0)}, wantErr: ErrBeyondHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := snapshot.CheckWindow(tt.window, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSessionSnapshot_DateSelectable(t *testing.T) {
	now := at(2026, 3, 4, 18, 0)
	snapshot := &SessionSnapshot{Calendar: weekdayCalendar(), Policy: DefaultPolicy(1)}

	assert.True(t, snapshot.DateSelectable(wednesday, now), "today stays selectable")
	assert.False(t, snapshot.DateSelectable(monday, now), "past date")
	assert.False(t, snapshot.DateSelectable(saturday, now), "closed weekday")
}
