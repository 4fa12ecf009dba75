package update_organization_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgCorruptedSettings     = "сохраненные настройки организации повреждены"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/organizations/{organizationId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, err := handlers.PathID(r, "organizationId")
	if err != nil {
		h.logger.Warn("PUT /organizations/{id}/settings - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /organizations/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /organizations/{id}/settings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.UpdateSettings(r.Context(), req.ToServiceRequest(organizationID))
	if err != nil {
		if errors.Is(err, policy.ErrCorruptedSettings) {
			h.logger.Error("PUT /organizations/{id}/settings - Corrupted settings: organization_id=%d, error=%v",
				organizationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptedSettings)
			return
		}
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("PUT /organizations/{id}/settings - Rejected: organization_id=%d, error=%v", organizationID, err)
			return
		}

		h.logger.Error("PUT /organizations/{id}/settings - Failed to update settings: organization_id=%d, error=%v",
			organizationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /organizations/{id}/settings - Settings updated: organization_id=%d", organizationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
