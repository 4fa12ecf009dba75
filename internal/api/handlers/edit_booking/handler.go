package edit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	editBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/edit_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidRecurrence  = "некорректное описание повторения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgForbidden          = "доступ запрещен"
	msgBranchMismatch     = "сессия открыта для другого филиала"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleNotInBranch = "автомобиль не относится к филиалу бронирования"
	msgCannotEdit         = "бронирование уже началось или закрыто и не может быть изменено"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	driverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, driverID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		if errors.Is(err, models.ErrInvalidRecurrence) {
			handlers.RespondBadRequest(w, msgInvalidRecurrence)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDateTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, editBooking.ErrSessionNotFound):
			h.logger.Warn("PUT /bookings/{id} - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, driver_id=%d", bookingID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editBooking.ErrBranchMismatch):
			h.logger.Warn("PUT /bookings/{id} - Branch mismatch: booking_id=%d, session_id=%s", bookingID, req.SessionID)
			handlers.RespondBadRequest(w, msgBranchMismatch)

		case errors.Is(err, editBooking.ErrVehicleNotFound):
			h.logger.Warn("PUT /bookings/{id} - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, editBooking.ErrVehicleNotInBranch):
			h.logger.Warn("PUT /bookings/{id} - Vehicle not in branch: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgVehicleNotInBranch)

		case errors.Is(err, editBooking.ErrCannotEdit):
			h.logger.Warn("PUT /bookings/{id} - Cannot edit: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCannotEdit)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("PUT /bookings/{id} - Rejected: booking_id=%d, error=%v", bookingID, err)
				return
			}
			h.logger.Error("PUT /bookings/{id} - Failed to edit booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking edited successfully: booking_id=%d, driver_id=%d", bookingID, driverID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
