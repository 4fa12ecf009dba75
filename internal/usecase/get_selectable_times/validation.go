package get_selectable_times

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	switch req.Slot {
	case SlotStart, SlotEnd:
	default:
		return fmt.Errorf("%w: slot must be start or end", ErrInvalidInput)
	}

	if req.Start != nil {
		if err := req.Start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
