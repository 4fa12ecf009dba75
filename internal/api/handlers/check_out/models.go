package check_out

import (
	checkOut "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_out"
)

// CheckOutRequest HTTP request model, тело запроса необязательно
type CheckOutRequest struct {
	Odometer *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckOutRequest) ToUseCaseRequest(bookingID, driverID int64) *checkOut.Request {
	return &checkOut.Request{
		BookingID: bookingID,
		DriverID:  driverID,
		Odometer:  r.Odometer,
	}
}
