package log_incident

import (
	"context"

	logIncident "github.com/m04kA/SMC-FleetBookingService/internal/usecase/log_incident"
)

type LogIncidentUseCase interface {
	Execute(ctx context.Context, req *logIncident.Request) (*logIncident.Response, error)
	ConfirmAndProceed(ctx context.Context, req *logIncident.Request) (*logIncident.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
