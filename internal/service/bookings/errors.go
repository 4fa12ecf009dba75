package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не в статусе approved
	ErrCannotCancel = fmt.Errorf("%w: booking cannot be cancelled", domain.ErrPolicyViolation)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("%w: booking status changed concurrently", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилища
	ErrTransport = fmt.Errorf("%w: bookings service", domain.ErrTransport)
)
