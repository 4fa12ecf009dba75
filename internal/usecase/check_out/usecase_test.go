package check_out

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

type mockBookingRepository struct {
	booking       *domain.Booking
	transitionErr error
	applied       []domain.Transition
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *m.booking
	return &b, nil
}

func (m *mockBookingRepository) ApplyTransition(ctx context.Context, id int64, transition domain.Transition) error {
	if m.transitionErr != nil {
		return m.transitionErr
	}
	m.applied = append(m.applied, transition)
	return nil
}

type mockVehicleRepository struct {
	vehicle *domain.Vehicle
	updates []float64
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := *m.vehicle
	return &v, nil
}

func (m *mockVehicleRepository) UpdateOdometer(ctx context.Context, id int64, odometer float64) error {
	m.updates = append(m.updates, odometer)
	return nil
}

type mockPolicyProvider struct {
	err error
}

func (m *mockPolicyProvider) GetPolicy(ctx context.Context, organizationID int64) (*domain.OrganizationPolicy, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := domain.DefaultPolicy(organizationID)
	return &p, nil
}

type mockPublisher struct {
	published []events.BookingEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	m.published = append(m.published, event)
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	bookings  *mockBookingRepository
	vehicles  *mockVehicleRepository
	policies  *mockPolicyProvider
	publisher *mockPublisher
}

func newFixture() *fixture {
	return &fixture{
		bookings: &mockBookingRepository{booking: &domain.Booking{
			ID:             10,
			OrganizationID: 1,
			DriverID:       5,
			VehicleID:      3,
			Status:         domain.StatusApproved,
		}},
		vehicles:  &mockVehicleRepository{vehicle: &domain.Vehicle{ID: 3, Odometer: 1000}},
		policies:  &mockPolicyProvider{},
		publisher: &mockPublisher{},
	}
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(f.bookings, f.vehicles, f.policies, f.publisher, &mockTxManager{}, logger.NewNop())
}

func TestCheckOut_WithinTolerance(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), &Request{BookingID: 10, DriverID: 5, Odometer: ptr.Ptr(1050.0)})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInProgress, resp.Booking.Status)
	assert.Equal(t, 1050.0, resp.Odometer)
	require.Len(t, f.bookings.applied, 1)
	assert.Equal(t, domain.TransitionCheckOut, f.bookings.applied[0].Kind)
	assert.Equal(t, domain.StatusApproved, f.bookings.applied[0].From)
	assert.Equal(t, []float64{1050}, f.vehicles.updates)
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, events.EventBookingCheckedOut, f.publisher.published[0].Type)
}

func TestCheckOut_DeviationRequiresConfirmation(t *testing.T) {
	f := newFixture()
	req := &Request{BookingID: 10, DriverID: 5, Odometer: ptr.Ptr(1100.0)}

	_, err := f.useCase().Execute(context.Background(), req)
	require.Error(t, err)

	var deviationErr *domain.DeviationConfirmationRequiredError
	require.True(t, errors.As(err, &deviationErr))
	assert.InDelta(t, 0.10, deviationErr.Deviation, 1e-9)
	assert.Empty(t, f.bookings.applied)
	assert.Empty(t, f.vehicles.updates)
	assert.Empty(t, f.publisher.published)

	resp, err := f.useCase().ConfirmAndProceed(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, resp.Odometer)
	assert.Equal(t, []float64{1100}, f.vehicles.updates)
}

func TestCheckOut_NoReadingCarriesPrevious(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), &Request{BookingID: 10, DriverID: 5})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, resp.Odometer)
	assert.Equal(t, 1000.0, *f.bookings.applied[0].Odometer)
	assert.Empty(t, f.vehicles.updates)
}

func TestCheckOut_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		req     *Request
		wantErr error
	}{
		{
			name:    "negative reading rejected even before lookup",
			req:     &Request{BookingID: 10, DriverID: 5, Odometer: ptr.Ptr(-1.0)},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "booking not found",
			setup:   func(f *fixture) { f.bookings.booking = nil },
			req:     &Request{BookingID: 10, DriverID: 5},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "another driver",
			req:     &Request{BookingID: 10, DriverID: 6},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "pending booking",
			setup:   func(f *fixture) { f.bookings.booking.Status = domain.StatusPendingApproval },
			req:     &Request{BookingID: 10, DriverID: 5},
			wantErr: domain.ErrPolicyViolation,
		},
		{
			name:    "status changed concurrently",
			setup:   func(f *fixture) { f.bookings.transitionErr = bookingRepo.ErrStatusChanged },
			req:     &Request{BookingID: 10, DriverID: 5},
			wantErr: ErrStatusChanged,
		},
		{
			name:    "transition failure",
			setup:   func(f *fixture) { f.bookings.transitionErr = errors.New("connection reset") },
			req:     &Request{BookingID: 10, DriverID: 5},
			wantErr: domain.ErrTransport,
		},
		{
			name:    "policy store unavailable",
			setup:   func(f *fixture) { f.policies.err = fmt.Errorf("%w: db down", domain.ErrTransport) },
			req:     &Request{BookingID: 10, DriverID: 5},
			wantErr: domain.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.useCase().Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, f.publisher.published)
		})
	}
}
