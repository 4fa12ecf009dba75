package extend_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	extendBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/extend_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "бронирование не найдено"
	msgForbidden           = "доступ запрещен"
	msgExtensionNotAllowed = "ручное продление запрещено настройками организации"
	msgCannotExtend        = "продлить можно только начатую поездку после времени окончания"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	driverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/extend - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, driverID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/extend - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/extend - Access denied: booking_id=%d, driver_id=%d", bookingID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, extendBooking.ErrExtensionNotAllowed):
			h.logger.Warn("PATCH /bookings/{id}/extend - Extension disabled: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgExtensionNotAllowed)

		case errors.Is(err, extendBooking.ErrCannotExtend):
			h.logger.Warn("PATCH /bookings/{id}/extend - Cannot extend: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCannotExtend)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("PATCH /bookings/{id}/extend - Rejected: booking_id=%d, error=%v", bookingID, err)
				return
			}
			h.logger.Error("PATCH /bookings/{id}/extend - Failed to extend booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/extend - Booking extended: booking_id=%d, end=%s",
		bookingID, result.Booking.Window.End)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
