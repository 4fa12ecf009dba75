package check_in

import (
	checkIn "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_in"
)

// CheckInRequest HTTP request model, тело запроса необязательно
type CheckInRequest struct {
	Odometer *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckInRequest) ToUseCaseRequest(bookingID, driverID int64) *checkIn.Request {
	return &checkIn.Request{
		BookingID: bookingID,
		DriverID:  driverID,
		Odometer:  r.Odometer,
	}
}
