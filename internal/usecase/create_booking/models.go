package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	SessionID  string                   // ID сессии бронирования (календарь, праздники, политика)
	DriverID   int64                    // ID водителя (из заголовка авторизации)
	VehicleID  int64                    // ID автомобиля филиала
	Start      time.Time                // Начало окна (локальное время)
	End        time.Time                // Окончание окна
	Recurrence domain.RecurrencePattern // Повторение (Kind none - без повторения)
	Notes      *string                  // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
// Status - approved или pending_approval в зависимости от политики
type Response struct {
	Booking *domain.Booking
}
