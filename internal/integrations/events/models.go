package events

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// EventType тип события жизненного цикла бронирования
type EventType string

const (
	EventBookingCreated    EventType = "booking.created"
	EventBookingEdited     EventType = "booking.edited"
	EventBookingCheckedOut EventType = "booking.checked_out"
	EventBookingCheckedIn  EventType = "booking.checked_in"
	EventBookingCancelled  EventType = "booking.cancelled"
	EventBookingExtended   EventType = "booking.extended"
	EventBookingDeleted    EventType = "booking.deleted"
	EventIncidentLogged    EventType = "vehicle.incident_logged"
)

// BookingEvent событие, публикуемое после успешной фиксации изменения
type BookingEvent struct {
	ID             string               `json:"id"`
	Type           EventType            `json:"type"`
	BookingID      int64                `json:"booking_id,omitempty"`
	OrganizationID int64                `json:"organization_id,omitempty"`
	BranchID       int64                `json:"branch_id,omitempty"`
	DriverID       int64                `json:"driver_id,omitempty"`
	VehicleID      int64                `json:"vehicle_id,omitempty"`
	Status         domain.BookingStatus `json:"status,omitempty"`
	Start          *time.Time           `json:"start,omitempty"`
	End            *time.Time           `json:"end,omitempty"`
	Odometer       *float64             `json:"odometer,omitempty"`
	OccurredAt     time.Time            `json:"occurred_at"`
}

// NewBookingEvent собирает событие по бронированию
func NewBookingEvent(eventType EventType, booking *domain.Booking) BookingEvent {
	start, end := booking.Window.Start, booking.Window.End
	return BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		OrganizationID: booking.OrganizationID,
		BranchID:       booking.BranchID,
		DriverID:       booking.DriverID,
		VehicleID:      booking.VehicleID,
		Status:         booking.Status,
		Start:          &start,
		End:            &end,
	}
}

// NewIncidentEvent собирает событие по инциденту с автомобилем
func NewIncidentEvent(organizationID int64, incident *domain.Incident) BookingEvent {
	event := BookingEvent{
		Type:           EventIncidentLogged,
		OrganizationID: organizationID,
		DriverID:       incident.DriverID,
		VehicleID:      incident.VehicleID,
		Odometer:       incident.Odometer,
	}
	if incident.BookingID != nil {
		event.BookingID = *incident.BookingID
	}
	return event
}
