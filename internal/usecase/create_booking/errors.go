package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrAccessDenied возвращается, когда сессия открыта для другого водителя
	ErrAccessDenied = errors.New("create_booking: session belongs to another driver")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotInBranch возвращается, когда автомобиль не принадлежит филиалу сессии
	ErrVehicleNotInBranch = fmt.Errorf("%w: create_booking: vehicle does not belong to the branch", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: create_booking", domain.ErrTransport)
)
