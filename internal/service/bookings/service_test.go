package bookings

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
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

type mockBookingRepository struct {
	getByIDFunc         func(ctx context.Context, id int64) (*domain.Booking, error)
	getByFilterFunc     func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	applyTransitionFunc func(ctx context.Context, id int64, transition domain.Transition) error
	deleteFunc          func(ctx context.Context, id int64) error
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingRepository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.getByFilterFunc(ctx, filter)
}

func (m *mockBookingRepository) ApplyTransition(ctx context.Context, id int64, transition domain.Transition) error {
	return m.applyTransitionFunc(ctx, id, transition)
}

func (m *mockBookingRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
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

func approvedBooking() *domain.Booking {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:        10,
		BranchID:  7,
		DriverID:  5,
		VehicleID: 3,
		Status:    domain.StatusApproved,
		Window:    domain.BookingWindow{Start: start, End: start.Add(3 * time.Hour)},
	}
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name          string
		booking       *domain.Booking
		getErr        error
		transitionErr error
		userID        int64
		wantErr       error
	}{
		{name: "approved booking cancelled", booking: approvedBooking(), userID: 5},
		{
			name: "in progress cannot be cancelled",
			booking: func() *domain.Booking {
				b := approvedBooking()
				b.Status = domain.StatusInProgress
				return b
			}(),
			userID:  5,
			wantErr: domain.ErrPolicyViolation,
		},
		{name: "other driver", booking: approvedBooking(), userID: 6, wantErr: ErrAccessDenied},
		{name: "not found", getErr: bookingRepo.ErrBookingNotFound, userID: 5, wantErr: ErrBookingNotFound},
		{name: "storage down", getErr: errors.New("timeout"), userID: 5, wantErr: domain.ErrTransport},
		{
			name:          "status changed concurrently",
			booking:       approvedBooking(),
			transitionErr: bookingRepo.ErrStatusChanged,
			userID:        5,
			wantErr:       ErrStatusChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var applied *domain.Transition
			repo := &mockBookingRepository{
				getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
					return tt.booking, tt.getErr
				},
				applyTransitionFunc: func(ctx context.Context, id int64, transition domain.Transition) error {
					applied = &transition
					return tt.transitionErr
				},
			}
			publisher := &mockPublisher{}
			svc := NewService(repo, publisher, &mockTxManager{}, logger.NewNop())

			resp, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
				UserID:             tt.userID,
				CancellationReason: "  plans changed ",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, publisher.published)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "cancelled", resp.Status)
			require.NotNil(t, applied)
			assert.Equal(t, domain.StatusApproved, applied.From)
			assert.Equal(t, domain.StatusCancelled, applied.To)
			assert.Equal(t, "plans changed", *applied.Reason)
			require.Len(t, publisher.published, 1)
			assert.Equal(t, events.EventBookingCancelled, publisher.published[0].Type)
		})
	}
}

func TestService_GetBranchBookings(t *testing.T) {
	t.Run("filter built from request", func(t *testing.T) {
		var got domain.BookingsFilter
		repo := &mockBookingRepository{
			getByFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
				got = filter
				return []*domain.Booking{approvedBooking()}, nil
			},
		}
		svc := NewService(repo, &mockPublisher{}, &mockTxManager{}, logger.NewNop())

		resp, err := svc.GetBranchBookings(context.Background(), &models.GetBranchBookingsRequest{
			BranchID: 7,
			DriverID: ptr.Ptr(int64(5)),
			Status:   ptr.Ptr("approved"),
		})
		require.NoError(t, err)

		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "2026-03-02T09:00", resp.Bookings[0].Start)
		assert.Equal(t, int64(7), *got.BranchID)
		assert.Equal(t, int64(5), *got.DriverID)
		assert.Equal(t, domain.StatusApproved, *got.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(&mockBookingRepository{}, &mockPublisher{}, &mockTxManager{}, logger.NewNop())

		_, err := svc.GetBranchBookings(context.Background(), &models.GetBranchBookingsRequest{
			BranchID: 7,
			Status:   ptr.Ptr("confirmed"),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Delete(t *testing.T) {
	repo := &mockBookingRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return approvedBooking(), nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewService(repo, publisher, &mockTxManager{}, logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 10))
	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.EventBookingDeleted, publisher.published[0].Type)
}
