package check_driver_availability

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса проверки занятости водителя
type Request struct {
	DriverID         int64     // ID водителя
	Start            time.Time // Начало окна
	End              time.Time // Окончание окна
	EditingBookingID *int64    // ID редактируемого бронирования (не считается конфликтом)
}

// Response модель ответа: пустой список конфликтов означает "свободен"
type Response struct {
	Free      bool
	Conflicts []domain.DriverBookingConflict
}
