package log_incident

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	logIncident "github.com/m04kA/SMC-FleetBookingService/internal/usecase/log_incident"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVehicleNotFound    = "автомобиль не найден"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase LogIncidentUseCase
	logger  Logger
}

func NewHandler(useCase LogIncidentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/incidents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /vehicles/{id}/incidents", h.useCase.Execute)
}

// HandleConfirm POST /api/v1/vehicles/{vehicleId}/incidents/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /vehicles/{id}/incidents/confirm", h.useCase.ConfirmAndProceed)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	execute func(ctx context.Context, req *logIncident.Request) (*logIncident.Response, error),
) {
	vehicleID, err := handlers.PathID(r, "vehicleId")
	if err != nil {
		h.logger.Warn("%s - Invalid vehicle ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	driverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req LogIncidentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(vehicleID, driverID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, logIncident.ErrVehicleNotFound):
			h.logger.Warn("%s - Vehicle not found: vehicle_id=%d", route, vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, logIncident.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: vehicle_id=%d", route, vehicleID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, logIncident.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: vehicle_id=%d, driver_id=%d", route, vehicleID, driverID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			if handlers.RespondDomainError(w, r, err) {
				h.logger.Warn("%s - Rejected: vehicle_id=%d, error=%v", route, vehicleID, err)
				return
			}
			h.logger.Error("%s - Failed to log incident: vehicle_id=%d, error=%v", route, vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Incident logged: incident_id=%d, vehicle_id=%d", route, result.Incident.ID, vehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainIncident(result.Incident))
}
