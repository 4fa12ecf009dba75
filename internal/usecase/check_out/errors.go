package check_out

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_out: booking not found")

	// ErrVehicleNotFound возвращается, когда автомобиль бронирования не найден
	ErrVehicleNotFound = errors.New("check_out: vehicle not found")

	// ErrAccessDenied возвращается, когда бронирование оформлено на другого водителя
	ErrAccessDenied = errors.New("check_out: access denied")

	// ErrCannotCheckOut возвращается, когда бронирование не в статусе approved
	ErrCannotCheckOut = fmt.Errorf("%w: check_out: booking is not approved", domain.ErrPolicyViolation)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("%w: check_out: booking status changed concurrently", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: check_out: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: check_out", domain.ErrTransport)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
