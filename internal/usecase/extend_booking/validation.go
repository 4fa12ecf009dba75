package extend_booking

import (
	"fmt"
	"time"

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

	if req.NewEnd.IsZero() {
		return fmt.Errorf("%w: newEnd is required", ErrInvalidInput)
	}

	return nil
}

// validateNewEnd новое окончание должно быть позже текущего окончания и текущего момента
func validateNewEnd(booking *domain.Booking, newEnd, now time.Time) error {
	if !newEnd.After(booking.Window.End) {
		return fmt.Errorf("%w: newEnd %s must be after current end %s",
			ErrInvalidInput, newEnd.Format(time.RFC3339), booking.Window.End.Format(time.RFC3339))
	}

	if !newEnd.After(now) {
		return fmt.Errorf("%w: newEnd %s is in the past", ErrInvalidInput, newEnd.Format(time.RFC3339))
	}

	return nil
}
