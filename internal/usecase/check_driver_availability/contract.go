package check_driver_availability

import (
	"context"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDriverConflicts(ctx context.Context, driverID int64, window domain.BookingWindow) ([]domain.DriverBookingConflict, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
