package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
)

func TestBuildMessage(t *testing.T) {
	booking := &domain.Booking{
		ID:        42,
		DriverID:  5,
		VehicleID: 9,
		Status:    domain.StatusApproved,
		Window: domain.BookingWindow{
			Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			End:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local),
		},
	}

	msg, err := buildMessage(NewBookingEvent(EventBookingCreated, booking))
	require.NoError(t, err)

	assert.Equal(t, "booking:42", string(msg.Key))
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "booking.created", string(msg.Headers[0].Value))

	var decoded BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.NotEmpty(t, decoded.ID)
	assert.False(t, decoded.OccurredAt.IsZero())
	assert.Equal(t, domain.StatusApproved, decoded.Status)
	assert.Equal(t, int64(9), decoded.VehicleID)
}

func TestBuildMessage_IncidentWithoutBooking(t *testing.T) {
	odometer := 1234.5
	incident := &domain.Incident{VehicleID: 9, DriverID: 5, Odometer: &odometer}

	msg, err := buildMessage(NewIncidentEvent(1, incident))
	require.NoError(t, err)

	assert.Equal(t, "vehicle:9", string(msg.Key))
	assert.Equal(t, "vehicle.incident_logged", string(msg.Headers[0].Value))

	var decoded BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, int64(1), decoded.OrganizationID)
	require.NotNil(t, decoded.Odometer)
	assert.Equal(t, 1234.5, *decoded.Odometer)
	assert.Nil(t, decoded.Start)
}

func TestNewProducer_InvalidConfig(t *testing.T) {
	_, err := NewProducer(nil, "topic", logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewProducer([]string{"localhost:9092"}, "", logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestProducer_PublishAfterClose(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"}, "fleet.booking.events", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, p.Close())

	err = p.Publish(context.Background(), BookingEvent{Type: EventBookingCancelled, BookingID: 1})
	assert.ErrorIs(t, err, ErrProducerClosed)
}
