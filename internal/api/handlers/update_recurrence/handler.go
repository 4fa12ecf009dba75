package update_recurrence

import (
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRecurrence  = "некорректное описание повторения или даты начала"
)

type Handler struct {
	useCase UpdateRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recurrence
// Применяет действие пользователя к выбору повторения и возвращает новое состояние
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurrence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /recurrence - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /recurrence - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecurrence)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("POST /recurrence - Rejected: action=%s, error=%v", req.Action, err)
			return
		}
		h.logger.Error("POST /recurrence - Failed to update recurrence: action=%s, error=%v", req.Action, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRecurrence(result.Pattern))
}
