package extend_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование оформлено на другого водителя
	ErrAccessDenied = errors.New("extend_booking: access denied")

	// ErrExtensionNotAllowed возвращается, когда организация запретила ручное продление
	ErrExtensionNotAllowed = fmt.Errorf("%w: extend_booking: manual extension is disabled by organization", domain.ErrPolicyViolation)

	// ErrCannotExtend возвращается, когда поездка не начата или еще не вышла за время окончания
	ErrCannotExtend = fmt.Errorf("%w: extend_booking: booking cannot be extended", domain.ErrPolicyViolation)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("%w: extend_booking: booking status changed concurrently", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: extend_booking: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: extend_booking", domain.ErrTransport)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)
