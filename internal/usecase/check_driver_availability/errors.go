package check_driver_availability

import (
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: check_driver_availability: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается, когда запрос бронирований водителя не выполнен
	// Ошибка запроса никогда не трактуется как "свободен"
	ErrTransport = fmt.Errorf("%w: check_driver_availability", domain.ErrTransport)
)
