package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Transitions(t *testing.T) {
	now := at(2026, 3, 4, 12, 0)
	future := BookingWindow{Start: at(2026, 3, 5, 9, 0), End: at(2026, 3, 5, 17, 0)}
	past := BookingWindow{Start: at(2026, 3, 4, 8, 0), End: at(2026, 3, 4, 11, 0)}

	tests := []struct {
		status   BookingStatus
		window   BookingWindow
		checkOut bool
		checkIn  bool
		cancel   bool
		extend   bool
		edit     bool
	}{
		{status: StatusPendingApproval, window: future, edit: true},
		{status: StatusApproved, window: future, checkOut: true, cancel: true, edit: true},
		{status: StatusApproved, window: past, checkOut: true, cancel: true},
		{status: StatusInProgress, window: past, checkIn: true, extend: true},
		{status: StatusInProgress, window: future, checkIn: true},
		{status: StatusCompleted, window: future},
		{status: StatusDeclined, window: future},
		{status: StatusCancelled, window: future},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status, Window: tt.window}
			assert.Equal(t, tt.checkOut, b.CanCheckOut(), "check out")
			assert.Equal(t, tt.checkIn, b.CanCheckIn(), "check in")
			assert.Equal(t, tt.cancel, b.CanBeCancelled(), "cancel")
			assert.Equal(t, tt.extend, b.CanBeExtended(now), "extend")
			assert.Equal(t, tt.edit, b.CanBeEdited(now), "edit")
		})
	}
}

func TestBookingWindow(t *testing.T) {
	w := BookingWindow{Start: at(2026, 3, 4, 9, 0), End: at(2026, 3, 4, 12, 0)}

	assert.True(t, w.IsValid())
	assert.True(t, w.SpansSingleDay())
	assert.False(t, BookingWindow{Start: w.End, End: w.Start}.IsValid())
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, StatusApproved.IsValid())
	assert.False(t, BookingStatus("confirmed").IsValid())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}
