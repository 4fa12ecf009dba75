package policy

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: policy: invalid input data", domain.ErrValidation)

	// ErrCorruptedSettings возвращается, когда сохраненные настройки не разбираются
	ErrCorruptedSettings = errors.New("policy: stored settings are invalid")

	// ErrTransport возвращается, когда хранилище настроек недоступно
	ErrTransport = fmt.Errorf("%w: policy: settings store unavailable", domain.ErrTransport)
)
