package update_recurrence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
)

// 2026-03-04 - среда
var startDate = time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)

func item(v int) *int { return &v }

func TestUpdateRecurrence_Execute(t *testing.T) {
	endsOn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name          string
		req           *Request
		wantKind      domain.RecurrenceKind
		wantWeekdays  []time.Weekday
		wantMonthDays []int
		wantEndsOn    *time.Time
	}{
		{
			name:         "select weekly seeds start weekday",
			req:          &Request{Action: ActionSelect, Kind: domain.RecurrenceWeekly, StartDate: startDate},
			wantKind:     domain.RecurrenceWeekly,
			wantWeekdays: []time.Weekday{time.Wednesday},
		},
		{
			name:          "select monthly seeds start day and keeps end date",
			req:           &Request{Action: ActionSelect, Kind: domain.RecurrenceMonthly, StartDate: startDate, Current: domain.RecurrencePattern{Kind: domain.RecurrenceDaily, EndsOn: &endsOn}},
			wantKind:      domain.RecurrenceMonthly,
			wantMonthDays: []int{4},
			wantEndsOn:    &endsOn,
		},
		{
			name:     "select none drops end date",
			req:      &Request{Action: ActionSelect, Kind: domain.RecurrenceNone, StartDate: startDate, Current: domain.RecurrencePattern{Kind: domain.RecurrenceDaily, EndsOn: &endsOn}},
			wantKind: domain.RecurrenceNone,
		},
		{
			name: "toggle on keeps sorted",
			req: &Request{
				Action:    ActionToggleOn,
				Current:   domain.RecurrencePattern{Kind: domain.RecurrenceWeekly, Weekdays: []time.Weekday{time.Wednesday}},
				Item:      item(1),
				StartDate: startDate,
			},
			wantKind:     domain.RecurrenceWeekly,
			wantWeekdays: []time.Weekday{time.Monday, time.Wednesday},
		},
		{
			name: "toggle off last item reseeds",
			req: &Request{
				Action:    ActionToggleOff,
				Current:   domain.RecurrencePattern{Kind: domain.RecurrenceMonthly, MonthDays: []int{15}},
				Item:      item(15),
				StartDate: startDate,
			},
			wantKind:      domain.RecurrenceMonthly,
			wantMonthDays: []int{4},
		},
	}

	uc := NewUseCase(logger.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, resp.Pattern.Kind)
			assert.Equal(t, tt.wantWeekdays, resp.Pattern.Weekdays)
			assert.Equal(t, tt.wantMonthDays, resp.Pattern.MonthDays)
			assert.Equal(t, tt.wantEndsOn, resp.Pattern.EndsOn)
			assert.NoError(t, resp.Pattern.Validate())
		})
	}
}

func TestUpdateRecurrence_Validation(t *testing.T) {
	weekly := domain.RecurrencePattern{Kind: domain.RecurrenceWeekly, Weekdays: []time.Weekday{time.Monday}}

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "unknown action", req: &Request{Action: "flip", StartDate: startDate}},
		{name: "unknown kind", req: &Request{Action: ActionSelect, Kind: "yearly", StartDate: startDate}},
		{name: "missing start date", req: &Request{Action: ActionSelect, Kind: domain.RecurrenceDaily}},
		{name: "toggle without item", req: &Request{Action: ActionToggleOn, Current: weekly, StartDate: startDate}},
		{name: "weekday out of range", req: &Request{Action: ActionToggleOn, Current: weekly, Item: item(7), StartDate: startDate}},
		{name: "toggle on daily", req: &Request{Action: ActionToggleOn, Current: domain.RecurrencePattern{Kind: domain.RecurrenceDaily}, Item: item(1), StartDate: startDate}},
	}

	uc := NewUseCase(logger.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}
