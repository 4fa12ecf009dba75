package check_in

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_in: booking not found")

	// ErrVehicleNotFound возвращается, когда автомобиль бронирования не найден
	ErrVehicleNotFound = errors.New("check_in: vehicle not found")

	// ErrAccessDenied возвращается, когда бронирование оформлено на другого водителя
	ErrAccessDenied = errors.New("check_in: access denied")

	// ErrCannotCheckIn возвращается, когда поездка по бронированию не начата
	ErrCannotCheckIn = fmt.Errorf("%w: check_in: booking is not in progress", domain.ErrPolicyViolation)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("%w: check_in: booking status changed concurrently", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: check_in: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: check_in", domain.ErrTransport)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
