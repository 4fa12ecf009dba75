package get_selectable_times

import (
	"context"

	getSelectableTimes "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_times"
)

type GetSelectableTimesUseCase interface {
	Execute(ctx context.Context, req *getSelectableTimes.Request) (*getSelectableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
