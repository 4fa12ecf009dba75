package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (чтение, отмена, удаление)
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetDriverBookings получает бронирования водителя
// По умолчанию возвращает только активные бронирования
func (s *Service) GetDriverBookings(ctx context.Context, req *models.GetDriverBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDriverBookings: fetching bookings for driver=%d, status=%v", req.DriverID, req.Status)

	if req.DriverID <= 0 {
		return nil, fmt.Errorf("%w: driverID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDriverBookings: invalid filter for driver=%d: %v", req.DriverID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.list(ctx, "GetDriverBookings", filter)
}

// GetBranchBookings получает бронирования филиала с фильтрацией
// Поддерживает фильтрацию по водителю, периоду, статусу и включению неактивных бронирований
func (s *Service) GetBranchBookings(ctx context.Context, req *models.GetBranchBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetBranchBookings: fetching bookings for branch=%d", req.BranchID)
	if req.DriverID != nil {
		logMsg += fmt.Sprintf(", driver=%d", *req.DriverID)
	}
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info("%s", logMsg)

	if req.BranchID <= 0 {
		return nil, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBranchBookings: invalid filter for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.list(ctx, "GetBranchBookings", filter)
}

// Cancel отменяет бронирование
// Отменить можно только одобренное бронирование и только водителю, на которого оно оформлено
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	reason := strings.TrimSpace(req.CancellationReason)
	if len([]rune(reason)) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if booking.DriverID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		// Проверяем, можно ли отменить бронирование
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		transition := domain.Transition{
			Kind: domain.TransitionCancel,
			From: booking.Status,
			To:   domain.StatusCancelled,
		}
		if reason != "" {
			transition.Reason = &reason
		}

		if err := s.bookingRepo.ApplyTransition(txCtx, bookingID, transition); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				s.logger.Warn("Cancel: booking id=%d status changed concurrently", bookingID)
				return ErrStatusChanged
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrTransport, err)
		}

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = transition.Reason
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewBookingEvent(events.EventBookingCancelled, result))

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// Delete удаляет бронирование вне жизненного цикла
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, "Delete", bookingID)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrTransport, err)
	}

	s.publish(ctx, events.NewBookingEvent(events.EventBookingDeleted, booking))

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrTransport, op, err)
	}
	return booking, nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrTransport, op, err)
	}

	s.logger.Info("%s: successfully fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// publish публикует событие; ошибка публикации не отменяет зафиксированное изменение
func (s *Service) publish(ctx context.Context, event events.BookingEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish %s for booking id=%d: %v", event.Type, event.BookingID, err)
	}
}
