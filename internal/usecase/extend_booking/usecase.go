package extend_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// UseCase use case ручного продления поездки
type UseCase struct {
	bookingRepo    BookingRepository
	policyProvider PolicyProvider
	publisher      EventPublisher
	txManager      TransactionManager
	logger         Logger
	timeProvider   TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyProvider PolicyProvider,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		policyProvider: policyProvider,
		publisher:      publisher,
		txManager:      txManager,
		logger:         logger,
		timeProvider:   &RealTimeProvider{},
	}
}

// Execute продлевает поездку, изменяя только время окончания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: booking=%d, driver=%d, newEnd=%s", req.BookingID, req.DriverID, req.NewEnd)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var extended *domain.Booking

	// 2. Проверка и продление в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ExtendBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ExtendBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrTransport, err)
		}

		if booking.DriverID != req.DriverID {
			uc.logger.Warn("ExtendBooking: booking id=%d belongs to driver=%d", booking.ID, booking.DriverID)
			return ErrAccessDenied
		}

		// 2.2. Флаг организации проверяется первым, независимо от состояния поездки
		policy, err := uc.policyProvider.GetPolicy(txCtx, booking.OrganizationID)
		if err != nil {
			uc.logger.Error("ExtendBooking: failed to get policy for organization=%d: %v", booking.OrganizationID, err)
			if errors.Is(err, domain.ErrTransport) {
				return fmt.Errorf("%w: failed to get policy: %v", ErrTransport, err)
			}
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		if !policy.ManualExtensionAllowed {
			uc.logger.Warn("ExtendBooking: manual extension disabled for organization=%d", booking.OrganizationID)
			return ErrExtensionNotAllowed
		}

		// 2.3. Продлить можно только начатую поездку после исходного окончания
		if !booking.CanBeExtended(now) {
			uc.logger.Warn("ExtendBooking: booking id=%d cannot be extended, status=%s, end=%s",
				booking.ID, booking.Status, booking.Window.End)
			return ErrCannotExtend
		}

		if err := validateNewEnd(booking, req.NewEnd, now); err != nil {
			uc.logger.Warn("ExtendBooking: %v", err)
			return err
		}

		// 2.4. Проверяем пересечения на продлеваемом интервале, исключая само бронирование
		extension := domain.BookingWindow{Start: booking.Window.End, End: req.NewEnd}
		conflicts, err := uc.bookingRepo.GetDriverConflicts(txCtx, booking.DriverID, extension)
		if err != nil {
			uc.logger.Error("ExtendBooking: failed to query driver=%d bookings: %v", booking.DriverID, err)
			return fmt.Errorf("%w: failed to query driver bookings: %v", ErrTransport, err)
		}

		availability := domain.ClassifyAvailability(conflicts, &booking.ID)
		if !availability.IsFree() {
			uc.logger.Warn("ExtendBooking: driver=%d has %d conflicting booking(s)", booking.DriverID, len(availability.Conflicts))
			return &domain.ConflictError{Conflicts: availability.Conflicts}
		}

		// 2.5. Изменяем только время окончания
		newEnd := req.NewEnd
		transition := domain.Transition{
			Kind:   domain.TransitionExtend,
			From:   booking.Status,
			To:     booking.Status,
			NewEnd: &newEnd,
		}

		if err := uc.bookingRepo.ApplyTransition(txCtx, booking.ID, transition); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				uc.logger.Warn("ExtendBooking: booking id=%d status changed concurrently", booking.ID)
				return ErrStatusChanged
			}
			uc.logger.Error("ExtendBooking: failed to apply transition for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to apply transition: %v", ErrTransport, err)
		}

		booking.Window.End = newEnd
		extended = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTransaction) {
			uc.logger.Error("ExtendBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return nil, err
	}

	// 3. Публикуем событие
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.EventBookingExtended, extended)); err != nil {
		uc.logger.Warn("ExtendBooking: failed to publish event for booking id=%d: %v", extended.ID, err)
	}

	uc.logger.Info("ExtendBooking: booking id=%d extended until %s", extended.ID, extended.Window.End)

	return &Response{Booking: extended}, nil
}
