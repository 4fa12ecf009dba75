package check_in

import (
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.DriverID <= 0 {
		return fmt.Errorf("%w: driverID must be positive", ErrInvalidInput)
	}

	if req.Odometer != nil {
		if err := domain.ValidateOdometer(*req.Odometer); err != nil {
			return err
		}
	}

	return nil
}
