package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// Моки

type mockBookingRepository struct {
	createFunc             func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getDriverConflictsFunc func(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error)
	created                *domain.Booking
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = 100
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepository) GetDriverConflicts(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error) {
	if m.getDriverConflictsFunc != nil {
		return m.getDriverConflictsFunc(ctx, driverID, window)
	}
	return nil, nil
}

type mockVehicleRepository struct {
	vehicle *domain.Vehicle
	err     error
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return m.vehicle, m.err
}

type mockSessionStore struct {
	session *domain.SessionSnapshot
	err     error
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	return m.session, m.err
}

type mockPublisher struct {
	published []events.BookingEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	m.published = append(m.published, event)
	return nil
}

type mockTxManager struct {
	commitErr error
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// Фикстуры

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local) // понедельник

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.Local)
}

func testSession(policy domain.OrganizationPolicy) *domain.SessionSnapshot {
	hours := domain.TimeWindow{Open: "08:00", Close: "20:00"}
	days := make(map[time.Weekday]domain.TimeWindow)
	for d := time.Monday; d <= time.Friday; d++ {
		days[d] = hours
	}
	return &domain.SessionSnapshot{
		ID:             "s-1",
		OrganizationID: 1,
		BranchID:       7,
		DriverID:       5,
		Calendar:       domain.BusinessCalendar{BranchID: 7, Days: days},
		Policy:         policy,
	}
}

type fixture struct {
	bookings  *mockBookingRepository
	vehicles  *mockVehicleRepository
	sessions  *mockSessionStore
	publisher *mockPublisher
	tx        *mockTxManager
}

func newFixture() *fixture {
	return &fixture{
		bookings:  &mockBookingRepository{},
		vehicles:  &mockVehicleRepository{vehicle: &domain.Vehicle{ID: 3, BranchID: 7, Odometer: 1000}},
		sessions:  &mockSessionStore{session: testSession(domain.DefaultPolicy(1))},
		publisher: &mockPublisher{},
		tx:        &mockTxManager{},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.bookings, f.vehicles, f.sessions, f.publisher, f.tx, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		SessionID:  "s-1",
		DriverID:   5,
		VehicleID:  3,
		Start:      at(3, 9),
		End:        at(3, 12),
		Recurrence: domain.NoRecurrence(),
	}
}

// Тесты

func TestUseCase_Execute_Success(t *testing.T) {
	t.Run("approved when approval is not required", func(t *testing.T) {
		f := newFixture()

		resp, err := f.useCase().Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(100), resp.Booking.ID)
		assert.Equal(t, domain.StatusApproved, resp.Booking.Status)
		assert.Equal(t, int64(7), f.bookings.created.BranchID)
		assert.Equal(t, int64(1), f.bookings.created.OrganizationID)
		require.Len(t, f.publisher.published, 1)
		assert.Equal(t, events.EventBookingCreated, f.publisher.published[0].Type)
	})

	t.Run("pending approval when policy requires it", func(t *testing.T) {
		f := newFixture()
		policy := domain.DefaultPolicy(1)
		policy.BookingRequiresApproval = true
		f.sessions.session = testSession(policy)

		resp, err := f.useCase().Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingApproval, resp.Booking.Status)
	})

	t.Run("weekly series", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		endsOn := at(31, 0)
		req.Recurrence = domain.OnPatternSelected(domain.RecurrenceWeekly, req.Start)
		req.Recurrence.EndsOn = &endsOn

		resp, err := f.useCase().Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Booking.IsRecurring())
		assert.Equal(t, []time.Weekday{time.Tuesday}, f.bookings.created.Recurrence.Weekdays)
	})
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	f := newFixture()
	existing := domain.DriverBookingConflict{
		BookingID: 44,
		Status:    domain.StatusApproved,
		Window:    domain.BookingWindow{Start: at(3, 11), End: at(3, 14)},
	}
	f.bookings.getDriverConflictsFunc = func(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error) {
		return []domain.DriverBookingConflict{existing}, nil
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrConflict)

	var conflictErr *domain.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, []domain.DriverBookingConflict{existing}, conflictErr.Conflicts)
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.publisher.published)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name: "driver query failure is never treated as free",
			prepare: func(f *fixture, req *Request) {
				f.bookings.getDriverConflictsFunc = func(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error) {
					return nil, errors.New("connection reset")
				}
			},
			wantErr: domain.ErrTransport,
		},
		{
			name: "closed day",
			prepare: func(f *fixture, req *Request) {
				req.Start, req.End = at(7, 9), at(7, 12)
			},
			wantErr: domain.ErrDateNotSelectable,
		},
		{
			name: "outside business hours",
			prepare: func(f *fixture, req *Request) {
				req.Start, req.End = at(3, 7), at(3, 12)
			},
			wantErr: domain.ErrTimeNotSelectable,
		},
		{
			name: "recurring window spans midnight",
			prepare: func(f *fixture, req *Request) {
				policy := domain.DefaultPolicy(1)
				policy.TimeWindowRestricted = false
				f.sessions.session = testSession(policy)
				req.Start, req.End = at(3, 22), at(4, 2)
				req.Recurrence = domain.OnPatternSelected(domain.RecurrenceDaily, req.Start)
				endsOn := at(20, 0)
				req.Recurrence.EndsOn = &endsOn
			},
			wantErr: domain.ErrRecurrenceSpan,
		},
		{
			name: "recurring without end date",
			prepare: func(f *fixture, req *Request) {
				req.Recurrence = domain.OnPatternSelected(domain.RecurrenceDaily, req.Start)
			},
			wantErr: domain.ErrRecurrenceEndDate,
		},
		{
			name: "vehicle from another branch",
			prepare: func(f *fixture, req *Request) {
				f.vehicles.vehicle = &domain.Vehicle{ID: 3, BranchID: 8}
			},
			wantErr: ErrVehicleNotInBranch,
		},
		{
			name: "session of another driver",
			prepare: func(f *fixture, req *Request) {
				req.DriverID = 6
			},
			wantErr: ErrAccessDenied,
		},
		{
			name: "commit failure",
			prepare: func(f *fixture, req *Request) {
				f.tx.commitErr = fmt.Errorf("%w: commit: could not serialize access", txmanager.ErrTransaction)
			},
			wantErr: domain.ErrTransport,
		},
		{
			name: "missing vehicle",
			prepare: func(f *fixture, req *Request) {
				req.VehicleID = 0
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.prepare(f, req)

			resp, err := f.useCase().Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.Empty(t, f.publisher.published)
		})
	}
}
