package log_incident

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.DriverID <= 0 {
		return fmt.Errorf("%w: driverID must be positive", ErrInvalidInput)
	}

	if req.BookingID != nil && *req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len([]rune(description)) > domain.MaxIncidentLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxIncidentLength)
	}

	if req.OccurredAt != nil && req.OccurredAt.After(now) {
		return fmt.Errorf("%w: occurredAt is in the future", ErrInvalidInput)
	}

	if req.Odometer != nil {
		if err := domain.ValidateOdometer(*req.Odometer); err != nil {
			return err
		}
	}

	return nil
}
