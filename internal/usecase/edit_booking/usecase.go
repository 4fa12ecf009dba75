package edit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	sessionStore "github.com/m04kA/SMC-FleetBookingService/internal/infra/session"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// UseCase use case редактирования бронирования
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

// Execute выполняет use case редактирования
// Редактировать можно pending_approval/approved бронирование, которое еще не началось.
// Само бронирование не считается конфликтом для нового окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: booking=%d, session=%s, driver=%d, window=%s..%s",
		req.BookingID, req.SessionID, req.DriverID,
		req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем снимок сессии
	session, err := uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("EditBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("EditBooking: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrTransport, err)
	}

	if session.DriverID != req.DriverID {
		uc.logger.Warn("EditBooking: session %s belongs to driver=%d", req.SessionID, session.DriverID)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()
	window := domain.BookingWindow{Start: req.Start, End: req.End}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrTransport, err)
		}

		if booking.DriverID != req.DriverID {
			uc.logger.Warn("EditBooking: booking id=%d belongs to driver=%d", booking.ID, booking.DriverID)
			return ErrAccessDenied
		}

		if booking.BranchID != session.BranchID {
			return ErrBranchMismatch
		}

		// 3.2. Проверяем, что бронирование можно редактировать
		if !booking.CanBeEdited(now) {
			uc.logger.Warn("EditBooking: booking id=%d cannot be edited, status=%s, start=%s",
				booking.ID, booking.Status, booking.Window.Start.Format(domain.DateTimeFormat))
			return ErrCannotEdit
		}

		// 3.3. Проверяем новое окно и повторение
		if err := session.CheckWindow(window, now); err != nil {
			uc.logger.Warn("EditBooking: window rejected: %v", err)
			return err
		}

		if err := domain.ValidateSeriesWindow(window, req.Recurrence, true); err != nil {
			uc.logger.Warn("EditBooking: recurrence rejected: %v", err)
			return err
		}

		// 3.4. Проверяем автомобиль, если он меняется
		if req.VehicleID != booking.VehicleID {
			if err := uc.checkVehicle(txCtx, req.VehicleID, booking.BranchID); err != nil {
				return err
			}
		}

		// 3.5. Проверяем занятость водителя, исключая само бронирование
		conflicts, err := uc.bookingRepo.GetDriverConflicts(txCtx, booking.DriverID, window)
		if err != nil {
			uc.logger.Error("EditBooking: failed to query driver bookings: %v", err)
			return fmt.Errorf("%w: failed to query driver bookings: %v", ErrTransport, err)
		}

		availability := domain.ClassifyAvailability(conflicts, &booking.ID)
		if !availability.IsFree() {
			uc.logger.Warn("EditBooking: driver=%d has %d conflicting bookings", booking.DriverID, len(availability.Conflicts))
			return &domain.ConflictError{Conflicts: availability.Conflicts}
		}

		// 3.6. Сохраняем изменения
		booking.VehicleID = req.VehicleID
		booking.Window = window
		booking.Recurrence = req.Recurrence
		booking.Notes = req.Notes

		updated, err := uc.bookingRepo.UpdateWindow(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				uc.logger.Warn("EditBooking: booking id=%d status changed concurrently", booking.ID)
				return ErrStatusChanged
			}
			uc.logger.Error("EditBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrTransport, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("EditBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil, err
	}

	// 4. Публикуем событие
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.EventBookingEdited, result)); err != nil {
		uc.logger.Warn("EditBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", result.ID)

	return &Response{Booking: result}, nil
}

func (uc *UseCase) checkVehicle(ctx context.Context, vehicleID, branchID int64) error {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("EditBooking: vehicle id=%d not found", vehicleID)
			return ErrVehicleNotFound
		}
		uc.logger.Error("EditBooking: failed to get vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: failed to get vehicle: %v", ErrTransport, err)
	}

	if vehicle.BranchID != branchID {
		uc.logger.Warn("EditBooking: vehicle id=%d belongs to branch=%d", vehicleID, vehicle.BranchID)
		return ErrVehicleNotInBranch
	}

	return nil
}
