package log_incident

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса на регистрацию инцидента
type Request struct {
	OrganizationID int64      // ID организации (источник допуска одометра)
	VehicleID      int64      // ID автомобиля
	DriverID       int64      // ID водителя (из заголовка авторизации)
	BookingID      *int64     // ID бронирования, в рамках которого произошел инцидент (опционально)
	Description    string     // Описание инцидента
	Odometer       *float64   // Показание одометра (опционально)
	OccurredAt     *time.Time // Время инцидента (по умолчанию текущее)
}

// Response модель ответа
type Response struct {
	Incident *domain.Incident
}
