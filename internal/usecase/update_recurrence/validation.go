package update_recurrence

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	switch req.Action {
	case ActionSelect:
		switch req.Kind {
		case domain.RecurrenceNone, domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
			return nil
		default:
			return fmt.Errorf("%w: kind %q", ErrInvalidInput, req.Kind)
		}

	case ActionToggleOff, ActionToggleOn:
		if req.Item == nil {
			return fmt.Errorf("%w: item is required", ErrInvalidInput)
		}
		return validateItem(req.Current.Kind, *req.Item)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
}

func validateItem(kind domain.RecurrenceKind, item int) error {
	switch kind {
	case domain.RecurrenceWeekly:
		if item < int(time.Sunday) || item > int(time.Saturday) {
			return fmt.Errorf("%w: weekday must be in 0..6", ErrInvalidInput)
		}
	case domain.RecurrenceMonthly:
		if item < 1 || item > 31 {
			return fmt.Errorf("%w: day of month must be in 1..31", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: pattern %q has no selector", ErrInvalidInput, kind)
	}
	return nil
}
