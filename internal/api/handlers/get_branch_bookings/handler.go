package get_branch_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidParams   = "некорректные параметры запроса"
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

// Handle GET /api/v1/branches/{branchId}/bookings
// Query params: driverId, date, from, to, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.PathID(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /branches/{id}/bookings - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	serviceReq, err := ToServiceRequest(branchID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /branches/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetBranchBookings(r.Context(), serviceReq)
	if err != nil {
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("GET /branches/{id}/bookings - Rejected: branch_id=%d, error=%v", branchID, err)
			return
		}
		h.logger.Error("GET /branches/{id}/bookings - Failed to get bookings: branch_id=%d, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{id}/bookings - Bookings retrieved successfully: branch_id=%d, count=%d",
		branchID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
