package edit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("edit_booking: session not found")

	// ErrAccessDenied возвращается, когда бронирование или сессия принадлежат другому водителю
	ErrAccessDenied = errors.New("edit_booking: access denied")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("edit_booking: vehicle not found")

	// ErrBranchMismatch возвращается, когда сессия открыта для другого филиала
	ErrBranchMismatch = fmt.Errorf("%w: edit_booking: session branch differs from booking branch", domain.ErrValidation)

	// ErrVehicleNotInBranch возвращается, когда автомобиль не принадлежит филиалу бронирования
	ErrVehicleNotInBranch = fmt.Errorf("%w: edit_booking: vehicle does not belong to the branch", domain.ErrValidation)

	// ErrCannotEdit возвращается для бронирования, которое уже началось или завершено
	ErrCannotEdit = fmt.Errorf("%w: edit_booking: booking cannot be edited", domain.ErrPolicyViolation)

	// ErrStatusChanged возвращается, когда статус изменился параллельно
	ErrStatusChanged = fmt.Errorf("%w: edit_booking: booking status changed concurrently", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: edit_booking: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: edit_booking", domain.ErrTransport)
)
