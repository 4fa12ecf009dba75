package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

func TestIsDateSelectable(t *testing.T) {
	holidays := Holidays{{Date: wednesday, Name: "Founders day"}}

	tests := []struct {
		name     string
		date     time.Time
		calendar BusinessCalendar
		policy   OrganizationPolicy
		holidays Holidays
		want     bool
	}{
		{
			name:     "working day",
			date:     monday,
			calendar: weekdayCalendar(),
			policy:   DefaultPolicy(1),
			want:     true,
		},
		{
			name:     "saturday excluded by weekend flag regardless of holidays",
			date:     saturday,
			calendar: sevenDayCalendar(),
			policy:   OrganizationPolicy{ExcludeWeekends: true},
			holidays: Holidays{{Date: saturday, Name: "x"}},
			want:     false,
		},
		{
			name:     "saturday closed at weekday-only branch",
			date:     saturday,
			calendar: weekdayCalendar(),
			policy:   DefaultPolicy(1),
			want:     false,
		},
		{
			name:     "saturday open when weekends are allowed",
			date:     saturday,
			calendar: sevenDayCalendar(),
			policy:   DefaultPolicy(1),
			want:     true,
		},
		{
			name:     "holiday excluded",
			date:     wednesday,
			calendar: weekdayCalendar(),
			policy:   OrganizationPolicy{ExcludeHolidays: true},
			holidays: holidays,
			want:     false,
		},
		{
			name:     "holiday ignored without flag",
			date:     wednesday,
			calendar: weekdayCalendar(),
			policy:   DefaultPolicy(1),
			holidays: holidays,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateSelectable(tt.date, tt.calendar, tt.policy, tt.holidays))
		})
	}
}

func TestIsDateSelectable_SaturdayWithWeekendExclusion(t *testing.T) {
	policy := OrganizationPolicy{ExcludeWeekends: true, ExcludeHolidays: true}

	assert.False(t, IsDateSelectable(saturday, weekdayCalendar(), policy, nil))
	assert.False(t, IsDateSelectable(saturday, weekdayCalendar(), policy, Holidays{{Date: saturday}}))
}

func TestIsTimeSelectable(t *testing.T) {
	restricted := DefaultPolicy(1)

	tests := []struct {
		name          string
		time          types.TimeString
		date          time.Time
		forceDisabled bool
		policy        OrganizationPolicy
		want          bool
	}{
		{name: "open boundary inclusive", time: "09:00", date: monday, policy: restricted, want: true},
		{name: "before open", time: "08:45", date: monday, policy: restricted, want: false},
		{name: "close boundary inclusive", time: "17:00", date: monday, policy: restricted, want: true},
		{name: "after close", time: "17:15", date: monday, policy: restricted, want: false},
		{name: "force disabled", time: "10:00", date: monday, forceDisabled: true, policy: restricted, want: false},
		{
			name:   "restriction disabled globally",
			time:   "06:00",
			date:   monday,
			policy: OrganizationPolicy{TimeWindowRestricted: false},
			want:   true,
		},
		{
			name: "branch excluded from restriction",
			time: "22:30",
			date: monday,
			policy: OrganizationPolicy{
				TimeWindowRestricted: true,
				TimeWindowScope:      TimeWindowScope{Kind: ScopeExcludedBranches, ExcludedBranchIDs: []int64{3, testBranchID}},
			},
			want: true,
		},
		{
			name: "other branch excluded only",
			time: "22:30",
			date: monday,
			policy: OrganizationPolicy{
				TimeWindowRestricted: true,
				TimeWindowScope:      TimeWindowScope{Kind: ScopeExcludedBranches, ExcludedBranchIDs: []int64{70}},
			},
			want: false,
		},
		{
			name:   "closed weekday ineligible even when unrestricted",
			time:   "10:00",
			date:   saturday,
			policy: OrganizationPolicy{TimeWindowRestricted: false},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsTimeSelectable(tt.time, tt.date, weekdayCalendar(), tt.forceDisabled, tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeGrid(t *testing.T) {
	grid := TimeGrid(SlotGridStepMinutes)

	assert.Len(t, grid, 96)
	assert.Equal(t, types.TimeString("00:00"), grid[0])
	assert.Equal(t, types.TimeString("09:00"), grid[36])
	assert.Equal(t, types.TimeString("23:45"), grid[95])
}
