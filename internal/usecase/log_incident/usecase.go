package log_incident

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// UseCase use case регистрации инцидента с автомобилем
type UseCase struct {
	vehicleRepo    VehicleRepository
	bookingRepo    BookingRepository
	policyProvider PolicyProvider
	publisher      EventPublisher
	txManager      TransactionManager
	logger         Logger
	timeProvider   TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	policyProvider PolicyProvider,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:    vehicleRepo,
		bookingRepo:    bookingRepo,
		policyProvider: policyProvider,
		publisher:      publisher,
		txManager:      txManager,
		logger:         logger,
		timeProvider:   &RealTimeProvider{},
	}
}

// Execute регистрирует инцидент с проверкой отклонения одометра от последнего показания автомобиля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	return uc.run(ctx, req, false)
}

// ConfirmAndProceed регистрирует инцидент после подтверждения отклонения пользователем
func (uc *UseCase) ConfirmAndProceed(ctx context.Context, req *Request) (*Response, error) {
	return uc.run(ctx, req, true)
}

func (uc *UseCase) run(ctx context.Context, req *Request, bypass bool) (*Response, error) {
	uc.logger.Info("LogIncident: vehicle=%d, driver=%d, confirmed=%t", req.VehicleID, req.DriverID, bypass)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("LogIncident: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Incident

	// 2. Проверка и запись в транзакции, автомобиль блокируется
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем бронирование, если оно указано
		if req.BookingID != nil {
			if err := uc.checkBooking(txCtx, req); err != nil {
				return err
			}
		}

		// 2.2. Получаем последнее показание автомобиля
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("LogIncident: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("LogIncident: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrTransport, err)
		}

		if vehicle.OrganizationID != req.OrganizationID {
			uc.logger.Warn("LogIncident: vehicle id=%d belongs to organization=%d, not %d",
				vehicle.ID, vehicle.OrganizationID, req.OrganizationID)
			return ErrOrganizationMismatch
		}

		// 2.3. Допуск отклонения берется из политики организации автомобиля
		policy, err := uc.policyProvider.GetPolicy(txCtx, vehicle.OrganizationID)
		if err != nil {
			uc.logger.Error("LogIncident: failed to get policy for organization=%d: %v", vehicle.OrganizationID, err)
			if errors.Is(err, domain.ErrTransport) {
				return fmt.Errorf("%w: failed to get policy: %v", ErrTransport, err)
			}
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// 2.4. Проверка отклонения одометра
		reading, err := domain.GateOdometer(vehicle.Odometer, req.Odometer, policy.OdometerTolerance, bypass)
		if err != nil {
			uc.logger.Warn("LogIncident: vehicle id=%d odometer gate: %v", vehicle.ID, err)
			return err
		}

		occurredAt := now
		if req.OccurredAt != nil {
			occurredAt = *req.OccurredAt
		}

		// 2.5. Сохраняем инцидент
		incident := &domain.Incident{
			VehicleID:   vehicle.ID,
			BookingID:   req.BookingID,
			DriverID:    req.DriverID,
			Description: strings.TrimSpace(req.Description),
			Odometer:    req.Odometer,
			OccurredAt:  occurredAt,
		}

		created, err = uc.vehicleRepo.CreateIncident(txCtx, incident)
		if err != nil {
			uc.logger.Error("LogIncident: failed to create incident for vehicle id=%d: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to create incident: %v", ErrTransport, err)
		}

		// 2.6. Обновляем показание автомобиля
		if req.Odometer != nil {
			if err := uc.vehicleRepo.UpdateOdometer(txCtx, vehicle.ID, reading); err != nil {
				uc.logger.Error("LogIncident: failed to update odometer of vehicle id=%d: %v", vehicle.ID, err)
				return fmt.Errorf("%w: failed to update odometer: %v", ErrTransport, err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("LogIncident: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil, err
	}

	// 3. Публикуем событие
	if err := uc.publisher.Publish(ctx, events.NewIncidentEvent(req.OrganizationID, created)); err != nil {
		uc.logger.Warn("LogIncident: failed to publish event for incident id=%d: %v", created.ID, err)
	}

	uc.logger.Info("LogIncident: incident id=%d logged for vehicle id=%d", created.ID, created.VehicleID)

	return &Response{Incident: created}, nil
}

func (uc *UseCase) checkBooking(ctx context.Context, req *Request) error {
	booking, err := uc.bookingRepo.GetByID(ctx, *req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("LogIncident: booking id=%d not found", *req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("LogIncident: failed to get booking id=%d: %v", *req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrTransport, err)
	}

	if booking.DriverID != req.DriverID {
		uc.logger.Warn("LogIncident: booking id=%d belongs to driver=%d", booking.ID, booking.DriverID)
		return ErrAccessDenied
	}

	if booking.VehicleID != req.VehicleID || booking.OrganizationID != req.OrganizationID {
		uc.logger.Warn("LogIncident: booking id=%d is for vehicle=%d organization=%d",
			booking.ID, booking.VehicleID, booking.OrganizationID)
		return ErrBookingMismatch
	}

	return nil
}
