package check_out

import "github.com/m04kA/SMC-FleetBookingService/internal/domain"

// Request модель запроса на выдачу автомобиля
type Request struct {
	BookingID int64    // ID бронирования
	DriverID  int64    // ID водителя (из заголовка авторизации)
	Odometer  *float64 // Показание одометра при выдаче (опционально)
}

// Response модель ответа
type Response struct {
	Booking  *domain.Booking
	Odometer float64 // Записанное показание одометра
}
