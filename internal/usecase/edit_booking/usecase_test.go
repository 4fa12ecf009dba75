package edit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
)

type mockBookingRepository struct {
	booking      *domain.Booking
	conflicts    []domain.DriverBookingConflict
	conflictsErr error
	updateErr    error
	updated      *domain.Booking
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *m.booking
	return &b, nil
}

func (m *mockBookingRepository) UpdateWindow(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = booking
	return booking, nil
}

func (m *mockBookingRepository) GetDriverConflicts(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error) {
	return m.conflicts, m.conflictsErr
}

type mockVehicleRepository struct {
	vehicles map[int64]*domain.Vehicle
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return m.vehicles[id], nil
}

type mockSessionStore struct {
	session *domain.SessionSnapshot
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	return m.session, nil
}

type mockPublisher struct {
	published []events.BookingEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	m.published = append(m.published, event)
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.Local)
}

func testSession() *domain.SessionSnapshot {
	hours := domain.TimeWindow{Open: "08:00", Close: "20:00"}
	days := make(map[time.Weekday]domain.TimeWindow)
	for d := time.Monday; d <= time.Friday; d++ {
		days[d] = hours
	}
	return &domain.SessionSnapshot{
		ID:       "s-1",
		BranchID: 7,
		DriverID: 5,
		Calendar: domain.BusinessCalendar{BranchID: 7, Days: days},
		Policy:   domain.DefaultPolicy(1),
	}
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        10,
		BranchID:  7,
		DriverID:  5,
		VehicleID: 3,
		Status:    domain.StatusApproved,
		Window:    domain.BookingWindow{Start: at(3, 9), End: at(3, 12)},
	}
}

type fixture struct {
	bookings  *mockBookingRepository
	vehicles  *mockVehicleRepository
	publisher *mockPublisher
}

func newFixture() *fixture {
	return &fixture{
		bookings: &mockBookingRepository{booking: existingBooking()},
		vehicles: &mockVehicleRepository{vehicles: map[int64]*domain.Vehicle{
			3: {ID: 3, BranchID: 7},
			4: {ID: 4, BranchID: 8},
		}},
		publisher: &mockPublisher{},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.bookings, f.vehicles, &mockSessionStore{session: testSession()}, f.publisher, &mockTxManager{}, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func editRequest() *Request {
	return &Request{
		BookingID:  10,
		SessionID:  "s-1",
		DriverID:   5,
		VehicleID:  3,
		Start:      at(3, 10),
		End:        at(3, 14),
		Recurrence: domain.NoRecurrence(),
	}
}

func TestUseCase_Execute_SelfConflictIsFree(t *testing.T) {
	f := newFixture()
	f.bookings.conflicts = []domain.DriverBookingConflict{
		{BookingID: 10, Status: domain.StatusApproved, Window: domain.BookingWindow{Start: at(3, 9), End: at(3, 12)}},
	}

	resp, err := f.useCase().Execute(context.Background(), editRequest())
	require.NoError(t, err)

	assert.Equal(t, at(3, 10), resp.Booking.Window.Start)
	assert.Equal(t, at(3, 14), f.bookings.updated.Window.End)
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, events.EventBookingEdited, f.publisher.published[0].Type)
}

func TestUseCase_Execute_RecurringEditWithoutEndDate(t *testing.T) {
	f := newFixture()
	req := editRequest()
	req.Recurrence = domain.OnPatternSelected(domain.RecurrenceWeekly, req.Start)

	_, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurrenceWeekly, f.bookings.updated.Recurrence.Kind)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name: "other bookings conflict",
			prepare: func(f *fixture, req *Request) {
				f.bookings.conflicts = []domain.DriverBookingConflict{{BookingID: 10}, {BookingID: 11}}
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "conflict query failure",
			prepare: func(f *fixture, req *Request) {
				f.bookings.conflictsErr = errors.New("timeout")
			},
			wantErr: domain.ErrTransport,
		},
		{
			name: "booking already started",
			prepare: func(f *fixture, req *Request) {
				f.bookings.booking.Window = domain.BookingWindow{Start: at(2, 7), End: at(2, 12)}
			},
			wantErr: ErrCannotEdit,
		},
		{
			name: "booking in progress",
			prepare: func(f *fixture, req *Request) {
				f.bookings.booking.Status = domain.StatusInProgress
			},
			wantErr: domain.ErrPolicyViolation,
		},
		{
			name: "new vehicle from another branch",
			prepare: func(f *fixture, req *Request) {
				req.VehicleID = 4
			},
			wantErr: ErrVehicleNotInBranch,
		},
		{
			name: "booking not found",
			prepare: func(f *fixture, req *Request) {
				f.bookings.booking = nil
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "status changed concurrently",
			prepare: func(f *fixture, req *Request) {
				f.bookings.updateErr = bookingRepo.ErrStatusChanged
			},
			wantErr: ErrStatusChanged,
		},
		{
			name: "window in the past",
			prepare: func(f *fixture, req *Request) {
				req.Start, req.End = at(2, 6), at(2, 9)
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := editRequest()
			tt.prepare(f, req)

			_, err := f.useCase().Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.publisher.published)
		})
	}
}
