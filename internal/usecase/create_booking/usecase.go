package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	sessionStore "github.com/m04kA/SMC-FleetBookingService/internal/infra/session"
	vehicleRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	sessionStore SessionStore
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	sessionStore SessionStore,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		sessionStore: sessionStore,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, driver=%d, vehicle=%d, window=%s..%s, recurrence=%s",
		req.SessionID, req.DriverID, req.VehicleID,
		req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat), req.Recurrence.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем снимок сессии
	session, err := uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("CreateBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrTransport, err)
	}

	if session.DriverID != req.DriverID {
		uc.logger.Warn("CreateBooking: session %s belongs to driver=%d, not %d", req.SessionID, session.DriverID, req.DriverID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем окно по календарю, праздникам и политике
	now := uc.timeProvider.Now()
	window := domain.BookingWindow{Start: req.Start, End: req.End}

	if err := session.CheckWindow(window, now); err != nil {
		uc.logger.Warn("CreateBooking: window rejected: %v", err)
		return nil, err
	}

	// 4. Проверяем повторение
	if err := domain.ValidateSeriesWindow(window, req.Recurrence, false); err != nil {
		uc.logger.Warn("CreateBooking: recurrence rejected: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Автомобиль должен принадлежать филиалу сессии
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrTransport, err)
		}

		if vehicle.BranchID != session.BranchID {
			uc.logger.Warn("CreateBooking: vehicle id=%d belongs to branch=%d, session branch=%d",
				vehicle.ID, vehicle.BranchID, session.BranchID)
			return ErrVehicleNotInBranch
		}

		// 5.2. Проверяем занятость водителя (строки блокируются FOR UPDATE)
		conflicts, err := uc.bookingRepo.GetDriverConflicts(txCtx, req.DriverID, window)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to query driver bookings: %v", err)
			return fmt.Errorf("%w: failed to query driver bookings: %v", ErrTransport, err)
		}

		availability := domain.ClassifyAvailability(conflicts, nil)
		if !availability.IsFree() {
			uc.logger.Warn("CreateBooking: driver=%d has %d conflicting bookings", req.DriverID, len(availability.Conflicts))
			return &domain.ConflictError{Conflicts: availability.Conflicts}
		}

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			OrganizationID: session.OrganizationID,
			BranchID:       session.BranchID,
			DriverID:       req.DriverID,
			VehicleID:      req.VehicleID,
			Status:         initialStatus(session.Policy),
			Window:         window,
			Recurrence:     req.Recurrence,
			Notes:          req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrTransport, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil, err
	}

	// 6. Публикуем событие
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.EventBookingCreated, result)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	return &Response{Booking: result}, nil
}
