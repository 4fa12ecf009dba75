package get_selectable_dates

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	days := int(math.Round(domain.StartOfDay(req.To).Sub(domain.StartOfDay(req.From)).Hours()/24)) + 1
	if days > domain.MaxSelectableDaysSpan {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, domain.MaxSelectableDaysSpan)
	}

	return nil
}
