package update_organization_settings

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
)

// UpdateSettingsRequest HTTP request model
// Значения передаются строками, как они хранятся: {"exclude_weekends": "true"}
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(organizationID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		OrganizationID: organizationID,
		Settings:       r.Settings,
	}
}
