package get_organization_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
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

// Handle GET /api/v1/organizations/{organizationId}/policy
// Для организации без настроек возвращаются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, err := handlers.PathID(r, "organizationId")
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/policy - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	result, err := h.service.GetPolicyResponse(r.Context(), organizationID)
	if err != nil {
		if errors.Is(err, policy.ErrCorruptedSettings) {
			h.logger.Error("GET /organizations/{id}/policy - Corrupted settings: organization_id=%d, error=%v",
				organizationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptedSettings)
			return
		}
		if handlers.RespondDomainError(w, r, err) {
			h.logger.Warn("GET /organizations/{id}/policy - Rejected: organization_id=%d, error=%v", organizationID, err)
			return
		}

		h.logger.Error("GET /organizations/{id}/policy - Failed to get policy: organization_id=%d, error=%v",
			organizationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /organizations/{id}/policy - Policy retrieved: organization_id=%d", organizationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
