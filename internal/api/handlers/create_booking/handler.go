package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidRecurrence  = "некорректное описание повторения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgForbidden          = "сессия открыта для другого водителя"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleNotInBranch = "автомобиль не относится к филиалу сессии"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	driverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest(driverID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
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
		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: session_id=%s, driver_id=%d", req.SessionID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotInBranch):
			h.logger.Warn("POST /bookings - Vehicle not in branch: vehicle_id=%d, session_id=%s", req.VehicleID, req.SessionID)
			handlers.RespondBadRequest(w, msgVehicleNotInBranch)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("POST /bookings - Rejected: driver_id=%d, error=%v", driverID, err)
				return
			}
			h.logger.Error("POST /bookings - Failed to create booking: driver_id=%d, error=%v", driverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, driver_id=%d, status=%s",
		result.Booking.ID, driverID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}
