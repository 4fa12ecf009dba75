package create_booking

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SessionID  string                `json:"sessionId" validate:"required,uuid"`
	VehicleID  int64                 `json:"vehicleId" validate:"required,gt=0"`
	Start      string                `json:"start" validate:"required"` // "2026-03-02T09:00"
	End        string                `json:"end" validate:"required"`
	Recurrence *models.RecurrenceDTO `json:"recurrence,omitempty"`
	Notes      *string               `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени и повторения)
func (r *CreateBookingRequest) ToUseCaseRequest(driverID int64) (*createBooking.Request, error) {
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

	return &createBooking.Request{
		SessionID:  r.SessionID,
		DriverID:   driverID,
		VehicleID:  r.VehicleID,
		Start:      start,
		End:        end,
		Recurrence: recurrence,
		Notes:      r.Notes,
	}, nil
}
