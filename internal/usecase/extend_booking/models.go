package extend_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса на продление поездки
type Request struct {
	BookingID int64     // ID бронирования
	DriverID  int64     // ID водителя (из заголовка авторизации)
	NewEnd    time.Time // Новое время окончания
}

// Response модель ответа
type Response struct {
	Booking *domain.Booking
}
