package get_selectable_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	getSelectableTimes "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_times"
)

const (
	msgInvalidParams   = "некорректные параметры, ожидаются date=YYYY-MM-DD, slot=start|end, start=HH:MM"
	msgSessionNotFound = "сессия бронирования не найдена или истекла"
)

type Handler struct {
	useCase GetSelectableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetSelectableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/times?date=YYYY-MM-DD&slot=start|end&start=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	useCaseReq, err := ToUseCaseRequest(sessionID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/times - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSelectableTimes.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/times - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("GET /sessions/{id}/times - Rejected: session_id=%s, error=%v", sessionID, err)
				return
			}
			h.logger.Error("GET /sessions/{id}/times - Failed to get times: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/times - Times built: session_id=%s, date=%s, slot=%s",
		sessionID, result.Date.Format(domain.DateFormat), result.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
