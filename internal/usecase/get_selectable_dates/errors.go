package get_selectable_dates

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_selectable_dates: session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_selectable_dates: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается, когда хранилище сессий недоступно
	ErrTransport = fmt.Errorf("%w: get_selectable_dates", domain.ErrTransport)
)
