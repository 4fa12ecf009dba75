package check_in

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	checkIn "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_in"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgVehicleNotFound    = "автомобиль бронирования не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotCheckIn      = "вернуть автомобиль можно только по начатой поездке"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/check-in
// При большом отклонении одометра отвечает 428, запрос нужно повторить на .../check-in/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-in", h.useCase.Execute)
}

// HandleConfirm POST /api/v1/bookings/{bookingId}/check-in/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-in/confirm", h.useCase.ConfirmAndProceed)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	execute func(ctx context.Context, req *checkIn.Request) (*checkIn.Response, error),
) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	driverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := execute(r.Context(), req.ToUseCaseRequest(bookingID, driverID))
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkIn.ErrVehicleNotFound):
			h.logger.Error("%s - Vehicle of booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkIn.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: booking_id=%d, driver_id=%d", route, bookingID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkIn.ErrCannotCheckIn):
			h.logger.Warn("%s - Cannot check in: booking_id=%d", route, bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCannotCheckIn)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("%s - Rejected: booking_id=%d, error=%v", route, bookingID, err)
				return
			}
			h.logger.Error("%s - Failed to check in: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Vehicle checked in: booking_id=%d, odometer=%.1f", route, bookingID, result.Odometer)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
