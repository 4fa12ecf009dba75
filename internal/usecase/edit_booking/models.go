package edit_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	BookingID  int64                    // ID редактируемого бронирования
	SessionID  string                   // ID сессии бронирования того же филиала
	DriverID   int64                    // ID водителя (из заголовка авторизации)
	VehicleID  int64                    // ID автомобиля
	Start      time.Time                // Новое начало окна
	End        time.Time                // Новое окончание окна
	Recurrence domain.RecurrencePattern // Повторение
	Notes      *string                  // Заметки
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking *domain.Booking
}
