package get_driver_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
)

const (
	msgInvalidDriverID = "некорректный ID водителя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drivers/{driverId}/bookings
// Query params: from, to, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	driverID, err := handlers.PathID(r, "driverId")
	if err != nil {
		h.logger.Warn("GET /drivers/{id}/bookings - Invalid driver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drivers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Водитель видит только свои бронирования
	if userID != driverID {
		h.logger.Warn("GET /drivers/{id}/bookings - Access denied: driver_id=%d, user_id=%d", driverID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	serviceReq, err := ToServiceRequest(driverID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /drivers/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetDriverBookings(r.Context(), serviceReq)
	if err != nil {
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("GET /drivers/{id}/bookings - Rejected: driver_id=%d, error=%v", driverID, err)
			return
		}
		h.logger.Error("GET /drivers/{id}/bookings - Failed to get bookings: driver_id=%d, error=%v", driverID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /drivers/{id}/bookings - Bookings retrieved successfully: driver_id=%d, count=%d",
		driverID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
