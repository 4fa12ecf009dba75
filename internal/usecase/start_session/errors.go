package start_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrBranchNotFound возвращается, когда филиал не найден в BranchService
	ErrBranchNotFound = errors.New("start_session: branch not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: start_session: invalid input data", domain.ErrValidation)

	// ErrTransport возвращается, когда календарь, праздники или политика не загрузились
	ErrTransport = fmt.Errorf("%w: start_session", domain.ErrTransport)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_session: internal error")
)
