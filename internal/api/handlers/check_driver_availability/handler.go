package check_driver_availability

import (
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
)

const (
	msgInvalidDriverID    = "некорректный ID водителя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drivers/{driverId}/availability
// Конфликты возвращаются со статусом 200: это ответ на вопрос, а не отказ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	driverID, err := handlers.PathID(r, "driverId")
	if err != nil {
		h.logger.Warn("POST /drivers/{id}/availability - Invalid driver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drivers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /drivers/{id}/availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(driverID)
	if err != nil {
		h.logger.Warn("POST /drivers/{id}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("POST /drivers/{id}/availability - Rejected: driver_id=%d, error=%v", driverID, err)
			return
		}
		h.logger.Error("POST /drivers/{id}/availability - Failed to check availability: driver_id=%d, error=%v", driverID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drivers/{id}/availability - Checked: driver_id=%d, free=%t, conflicts=%d",
		driverID, result.Free, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
