package get_organization_policy

import (
	"context"

	"github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
)

type PolicyService interface {
	GetPolicyResponse(ctx context.Context, organizationID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
