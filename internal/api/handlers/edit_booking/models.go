package edit_booking

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	editBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/edit_booking"
)

// EditBookingRequest HTTP request model, окно и повторение передаются целиком
type EditBookingRequest struct {
	SessionID  string                `json:"sessionId" validate:"required,uuid"`
	VehicleID  int64                 `json:"vehicleId" validate:"required,gt=0"`
	Start      string                `json:"start" validate:"required"`
	End        string                `json:"end" validate:"required"`
	Recurrence *models.RecurrenceDTO `json:"recurrence,omitempty"`
	Notes      *string               `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(bookingID, driverID int64) (*editBooking.Request, error) {
	start, err := models.ParseDateTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := models.ParseDateTime(r.End)
	if err != nil {
		return nil, err
	}

	recurrence, err := r.Recurrence.ToDomain()
	if err != nil {
		return nil, err
	}

	return &editBooking.Request{
		BookingID:  bookingID,
		SessionID:  r.SessionID,
		DriverID:   driverID,
		VehicleID:  r.VehicleID,
		Start:      start,
		End:        end,
		Recurrence: recurrence,
		Notes:      r.Notes,
	}, nil
}
