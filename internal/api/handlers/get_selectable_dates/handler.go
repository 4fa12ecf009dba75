package get_selectable_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	getSelectableDates "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_dates"
)

const (
	msgInvalidParams   = "некорректные параметры, ожидаются from и to в формате YYYY-MM-DD"
	msgSessionNotFound = "сессия бронирования не найдена или истекла"
)

type Handler struct {
	useCase GetSelectableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetSelectableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/dates?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	useCaseReq, err := ToUseCaseRequest(sessionID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/dates - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSelectableDates.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/dates - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("GET /sessions/{id}/dates - Rejected: session_id=%s, error=%v", sessionID, err)
				return
			}
			h.logger.Error("GET /sessions/{id}/dates - Failed to get dates: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/dates - Dates built: session_id=%s, count=%d", sessionID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
