package update_organization_settings

import (
	"context"

	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
)

type PolicyService interface {
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
