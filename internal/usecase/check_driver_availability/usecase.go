package check_driver_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// UseCase use case проверки занятости водителя
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDriverAvailability: driver=%d, window=%s..%s",
		req.DriverID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDriverAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пересекающиеся активные бронирования водителя
	window := domain.BookingWindow{Start: req.Start, End: req.End}
	conflicts, err := uc.bookingRepo.GetDriverConflicts(ctx, req.DriverID, window)
	if err != nil {
		uc.logger.Error("CheckDriverAvailability: failed to query bookings for driver=%d: %v", req.DriverID, err)
		return nil, fmt.Errorf("%w: failed to query driver bookings: %v", ErrTransport, err)
	}

	// 3. Классифицируем, исключая редактируемое бронирование
	availability := domain.ClassifyAvailability(conflicts, req.EditingBookingID)

	uc.logger.Info("CheckDriverAvailability: driver=%d, free=%t, conflicts=%d",
		req.DriverID, availability.IsFree(), len(availability.Conflicts))

	return &Response{
		Free:      availability.IsFree(),
		Conflicts: availability.Conflicts,
	}, nil
}
