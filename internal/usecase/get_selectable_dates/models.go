package get_selectable_dates

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса дат для выбора
type Request struct {
	SessionID string    // ID сессии бронирования
	From      time.Time // Первая дата диапазона (без времени)
	To        time.Time // Последняя дата диапазона включительно
}

// Response модель ответа со списком дат
type Response struct {
	SessionID string
	Dates     []domain.SelectableDate
}
