package update_recurrence

import (
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: update_recurrence: invalid input data", domain.ErrValidation)

	// ErrUnknownAction возвращается при неизвестном действии
	ErrUnknownAction = fmt.Errorf("%w: update_recurrence: unknown action", domain.ErrValidation)
)
