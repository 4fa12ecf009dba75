package log_incident

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("log_incident: vehicle not found")

	// ErrBookingNotFound возвращается, когда указанное бронирование не найдено
	ErrBookingNotFound = errors.New("log_incident: booking not found")

	// ErrAccessDenied возвращается, когда бронирование оформлено на другого водителя
	ErrAccessDenied = errors.New("log_incident: access denied")

	// ErrBookingMismatch возвращается, когда бронирование относится к другому автомобилю или организации
	ErrBookingMismatch = fmt.Errorf("%w: log_incident: booking does not match vehicle", domain.ErrValidation)

	// ErrOrganizationMismatch возвращается, когда автомобиль принадлежит другой организации
	ErrOrganizationMismatch = fmt.Errorf("%w: log_incident: vehicle belongs to another organization", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: log_incident: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается при недоступности хранилищ
	ErrTransport = fmt.Errorf("%w: log_incident", domain.ErrTransport)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("log_incident: internal error")
)
