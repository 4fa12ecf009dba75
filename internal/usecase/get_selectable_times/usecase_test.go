package get_selectable_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

type mockSessionStore struct {
	session *domain.SessionSnapshot
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	return m.session, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func testSession(policy domain.OrganizationPolicy) *domain.SessionSnapshot {
	hours := domain.TimeWindow{Open: "09:00", Close: "17:00"}
	return &domain.SessionSnapshot{
		ID:       "s-1",
		BranchID: 7,
		Calendar: domain.BusinessCalendar{
			BranchID: 7,
			Days:     map[time.Weekday]domain.TimeWindow{time.Wednesday: hours, time.Thursday: hours},
		},
		Policy: policy,
	}
}

func selectable(times []domain.SelectableTime) map[types.TimeString]bool {
	result := make(map[types.TimeString]bool, len(times))
	for _, t := range times {
		result[t.Time] = t.Selectable
	}
	return result
}

func TestUseCase_Execute(t *testing.T) {
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
	thursday := wednesday.AddDate(0, 0, 1)
	now := time.Date(2026, 3, 4, 10, 10, 0, 0, time.Local)

	excluded := domain.DefaultPolicy(1)
	excluded.TimeWindowScope = domain.TimeWindowScope{Kind: domain.ScopeExcludedBranches, ExcludedBranchIDs: []int64{7}}

	tests := []struct {
		name   string
		policy domain.OrganizationPolicy
		req    *Request
		want   map[types.TimeString]bool
	}{
		{
			name:   "business hours inclusive on both ends",
			policy: domain.DefaultPolicy(1),
			req:    &Request{SessionID: "s-1", Date: thursday, Slot: SlotStart},
			want:   map[types.TimeString]bool{"08:45": false, "09:00": true, "17:00": true, "17:15": false},
		},
		{
			name:   "past times today are disabled",
			policy: domain.DefaultPolicy(1),
			req:    &Request{SessionID: "s-1", Date: wednesday, Slot: SlotStart},
			want:   map[types.TimeString]bool{"10:00": false, "10:15": true},
		},
		{
			name:   "end must be after chosen start",
			policy: domain.DefaultPolicy(1),
			req:    &Request{SessionID: "s-1", Date: thursday, Slot: SlotEnd, Start: ptr.Ptr(types.TimeString("12:00"))},
			want:   map[types.TimeString]bool{"12:00": false, "12:15": true, "17:00": true},
		},
		{
			name:   "excluded branch ignores business hours",
			policy: excluded,
			req:    &Request{SessionID: "s-1", Date: thursday, Slot: SlotStart},
			want:   map[types.TimeString]bool{"06:00": true, "23:45": true},
		},
		{
			name:   "closed day disables the whole grid",
			policy: domain.DefaultPolicy(1),
			req:    &Request{SessionID: "s-1", Date: thursday.AddDate(0, 0, 1), Slot: SlotStart},
			want:   map[types.TimeString]bool{"09:00": false, "12:00": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&mockSessionStore{session: testSession(tt.policy)}, logger.NewNop())
			uc.timeProvider = fixedTime{now: now}

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, resp.Times, 96)

			got := selectable(resp.Times)
			for tm, want := range tt.want {
				assert.Equal(t, want, got[tm], "time %s", tm)
			}
		})
	}
}

func TestUseCase_Execute_InvalidSlot(t *testing.T) {
	uc := NewUseCase(&mockSessionStore{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s-1", Date: time.Now(), Slot: "middle"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
