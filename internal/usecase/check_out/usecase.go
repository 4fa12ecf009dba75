package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// UseCase use case выдачи автомобиля по бронированию (approved -> in_progress)
type UseCase struct {
	bookingRepo    BookingRepository
	vehicleRepo    VehicleRepository
	policyProvider PolicyProvider
	publisher      EventPublisher
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	policyProvider PolicyProvider,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		vehicleRepo:    vehicleRepo,
		policyProvider: policyProvider,
		publisher:      publisher,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет выдачу с проверкой отклонения одометра
// При отклонении от последнего показания автомобиля >= допуска возвращает
// *domain.DeviationConfirmationRequiredError и ничего не изменяет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	return uc.run(ctx, req, false)
}

// ConfirmAndProceed выполняет выдачу после подтверждения пользователем, без проверки отклонения
func (uc *UseCase) ConfirmAndProceed(ctx context.Context, req *Request) (*Response, error) {
	return uc.run(ctx, req, true)
}

func (uc *UseCase) run(ctx context.Context, req *Request, bypass bool) (*Response, error) {
	uc.logger.Info("CheckOut: booking=%d, driver=%d, odometer=%v, confirmed=%t",
		req.BookingID, req.DriverID, formatReading(req.Odometer), bypass)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOut: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Переход выполняется в транзакции, бронирование и автомобиль блокируются
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckOut: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckOut: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrTransport, err)
		}

		if booking.DriverID != req.DriverID {
			uc.logger.Warn("CheckOut: booking id=%d belongs to driver=%d", booking.ID, booking.DriverID)
			return ErrAccessDenied
		}

		// 2.2. Выдать можно только одобренное бронирование
		if !booking.CanCheckOut() {
			uc.logger.Warn("CheckOut: booking id=%d cannot be checked out, status=%s", booking.ID, booking.Status)
			return ErrCannotCheckOut
		}

		// 2.3. Получаем политику (допуск отклонения одометра)
		policy, err := uc.policyProvider.GetPolicy(txCtx, booking.OrganizationID)
		if err != nil {
			uc.logger.Error("CheckOut: failed to get policy for organization=%d: %v", booking.OrganizationID, err)
			if errors.Is(err, domain.ErrTransport) {
				return fmt.Errorf("%w: failed to get policy: %v", ErrTransport, err)
			}
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// 2.4. Получаем последнее показание автомобиля
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, booking.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Error("CheckOut: vehicle id=%d of booking id=%d not found", booking.VehicleID, booking.ID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("CheckOut: failed to get vehicle id=%d: %v", booking.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrTransport, err)
		}

		// 2.5. Проверка отклонения одометра
		reading, err := domain.GateOdometer(vehicle.Odometer, req.Odometer, policy.OdometerTolerance, bypass)
		if err != nil {
			uc.logger.Warn("CheckOut: booking id=%d odometer gate: %v", booking.ID, err)
			return err
		}

		// 2.6. Применяем переход approved -> in_progress
		transition := domain.Transition{
			Kind:     domain.TransitionCheckOut,
			From:     booking.Status,
			To:       domain.StatusInProgress,
			Odometer: &reading,
		}

		if err := uc.bookingRepo.ApplyTransition(txCtx, booking.ID, transition); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				uc.logger.Warn("CheckOut: booking id=%d status changed concurrently", booking.ID)
				return ErrStatusChanged
			}
			uc.logger.Error("CheckOut: failed to apply transition for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to apply transition: %v", ErrTransport, err)
		}

		// 2.7. Обновляем показание автомобиля, если оно было передано
		if req.Odometer != nil {
			if err := uc.vehicleRepo.UpdateOdometer(txCtx, vehicle.ID, reading); err != nil {
				uc.logger.Error("CheckOut: failed to update odometer of vehicle id=%d: %v", vehicle.ID, err)
				return fmt.Errorf("%w: failed to update odometer: %v", ErrTransport, err)
			}
		}

		booking.Status = domain.StatusInProgress
		booking.StartOdometer = &reading
		result = &Response{Booking: booking, Odometer: reading}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("CheckOut: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil, err
	}

	// 3. Публикуем событие
	event := events.NewBookingEvent(events.EventBookingCheckedOut, result.Booking)
	event.Odometer = &result.Odometer
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CheckOut: failed to publish event for booking id=%d: %v", result.Booking.ID, err)
	}

	uc.logger.Info("CheckOut: booking id=%d checked out, odometer=%.1f", result.Booking.ID, result.Odometer)

	return result, nil
}

func formatReading(reading *float64) string {
	if reading == nil {
		return "none"
	}
	return fmt.Sprintf("%.1f", *reading)
}
