package check_out

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	checkOut "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_out"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgVehicleNotFound    = "автомобиль бронирования не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotCheckOut     = "выдать автомобиль можно только по одобренному бронированию"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/check-out
// При большом отклонении одометра отвечает 428, запрос нужно повторить на .../check-out/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-out", h.useCase.Execute)
}

// HandleConfirm POST /api/v1/bookings/{bookingId}/check-out/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /bookings/{id}/check-out/confirm", h.useCase.ConfirmAndProceed)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	execute func(ctx context.Context, req *checkOut.Request) (*checkOut.Response, error),
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

	var req CheckOutRequest
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
		case errors.Is(err, checkOut.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkOut.ErrVehicleNotFound):
			h.logger.Error("%s - Vehicle of booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkOut.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: booking_id=%d, driver_id=%d", route, bookingID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkOut.ErrCannotCheckOut):
			h.logger.Warn("%s - Cannot check out: booking_id=%d", route, bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCannotCheckOut)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("%s - Rejected: booking_id=%d, error=%v", route, bookingID, err)
				return
			}
			h.logger.Error("%s - Failed to check out: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Vehicle checked out: booking_id=%d, odometer=%.1f", route, bookingID, result.Odometer)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
