package start_session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/branchservice"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

type mockBranchClient struct {
	getBusinessCalendarFunc func(ctx context.Context, branchID int64) (*branchservice.BusinessCalendar, error)
	getHolidaysFunc         func(ctx context.Context, branchID int64) (*branchservice.HolidaysResponse, error)
}

func (m *mockBranchClient) GetBusinessCalendar(ctx context.Context, branchID int64) (*branchservice.BusinessCalendar, error) {
	return m.getBusinessCalendarFunc(ctx, branchID)
}

func (m *mockBranchClient) GetHolidays(ctx context.Context, branchID int64) (*branchservice.HolidaysResponse, error) {
	if m.getHolidaysFunc != nil {
		return m.getHolidaysFunc(ctx, branchID)
	}
	return &branchservice.HolidaysResponse{BranchID: branchID}, nil
}

type mockPolicyProvider struct {
	policy *domain.OrganizationPolicy
	err    error
}

func (m *mockPolicyProvider) GetPolicy(ctx context.Context, organizationID int64) (*domain.OrganizationPolicy, error) {
	return m.policy, m.err
}

type mockSessionStore struct {
	saved *domain.SessionSnapshot
}

func (m *mockSessionStore) Save(ctx context.Context, snapshot *domain.SessionSnapshot) (*domain.SessionSnapshot, error) {
	snapshot.ID = "3f1c9a52-5d1e-4b8e-9a55-0c2f0b3a1d11"
	m.saved = snapshot
	return snapshot, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func weekdayCalendar(branchID int64) (*branchservice.BusinessCalendar, error) {
	day := branchservice.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("17:00")}
	return &branchservice.BusinessCalendar{
		BranchID: branchID,
		WorkingHours: branchservice.WorkingHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
	}, nil
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	policy := domain.DefaultPolicy(1)

	t.Run("snapshot stored with calendar, holidays and policy", func(t *testing.T) {
		store := &mockSessionStore{}
		client := &mockBranchClient{
			getBusinessCalendarFunc: func(ctx context.Context, branchID int64) (*branchservice.BusinessCalendar, error) {
				return weekdayCalendar(branchID)
			},
			getHolidaysFunc: func(ctx context.Context, branchID int64) (*branchservice.HolidaysResponse, error) {
				return &branchservice.HolidaysResponse{Holidays: []branchservice.Holiday{{Date: "2026-03-09", Name: "Day off"}}}, nil
			},
		}
		uc := NewUseCase(client, &mockPolicyProvider{policy: &policy}, store, logger.NewNop())
		uc.timeProvider = fixedTime{now: now}

		resp, err := uc.Execute(context.Background(), &Request{OrganizationID: 1, BranchID: 7, DriverID: 5})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Session.ID)
		assert.Equal(t, now, store.saved.LoadedAt)
		assert.Len(t, store.saved.Calendar.WorkingDays(), 5)
		assert.True(t, store.saved.Holidays.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)))
		assert.Equal(t, policy, store.saved.Policy)
	})

	tests := []struct {
		name        string
		req         *Request
		calendarErr error
		policyErr   error
		wantErr     error
	}{
		{name: "invalid branch", req: &Request{OrganizationID: 1, DriverID: 5}, wantErr: domain.ErrValidation},
		{name: "branch not found", req: &Request{OrganizationID: 1, BranchID: 7, DriverID: 5}, calendarErr: branchservice.ErrBranchNotFound, wantErr: ErrBranchNotFound},
		{name: "branch service down", req: &Request{OrganizationID: 1, BranchID: 7, DriverID: 5}, calendarErr: branchservice.ErrInternal, wantErr: domain.ErrTransport},
		{name: "policy store down", req: &Request{OrganizationID: 1, BranchID: 7, DriverID: 5}, policyErr: fmt.Errorf("%w: db", domain.ErrTransport), wantErr: domain.ErrTransport},
		{name: "corrupted policy", req: &Request{OrganizationID: 1, BranchID: 7, DriverID: 5}, policyErr: errors.New("bad settings"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockSessionStore{}
			client := &mockBranchClient{
				getBusinessCalendarFunc: func(ctx context.Context, branchID int64) (*branchservice.BusinessCalendar, error) {
					if tt.calendarErr != nil {
						return nil, tt.calendarErr
					}
					return weekdayCalendar(branchID)
				},
			}
			provider := &mockPolicyProvider{policy: &policy, err: tt.policyErr}
			if tt.policyErr != nil {
				provider.policy = nil
			}
			uc := NewUseCase(client, provider, store, logger.NewNop())

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store.saved)
		})
	}
}
