package check_driver_availability

import (
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DriverID <= 0 {
		return fmt.Errorf("%w: driverID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	window := domain.BookingWindow{Start: req.Start, End: req.End}
	if !window.IsValid() {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	if req.EditingBookingID != nil && *req.EditingBookingID <= 0 {
		return fmt.Errorf("%w: editingBookingID must be positive", ErrInvalidInput)
	}

	return nil
}
