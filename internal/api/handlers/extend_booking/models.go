package extend_booking

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	extendBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/extend_booking"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	NewEnd string `json:"newEnd" validate:"required"` // "2026-03-02T14:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExtendBookingRequest) ToUseCaseRequest(bookingID, driverID int64) (*extendBooking.Request, error) {
	newEnd, err := models.ParseDateTime(r.NewEnd)
	if err != nil {
		return nil, err
	}

	return &extendBooking.Request{
		BookingID: bookingID,
		DriverID:  driverID,
		NewEnd:    newEnd,
	}, nil
}
