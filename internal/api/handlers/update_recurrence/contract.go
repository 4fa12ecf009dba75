package update_recurrence

import (
	"context"

	updateRecurrence "github.com/m04kA/SMC-FleetBookingService/internal/usecase/update_recurrence"
)

type UpdateRecurrenceUseCase interface {
	Execute(ctx context.Context, req *updateRecurrence.Request) (*updateRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
