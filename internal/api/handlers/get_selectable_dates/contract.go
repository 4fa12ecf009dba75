package get_selectable_dates

import (
	"context"

	getSelectableDates "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_dates"
)

type GetSelectableDatesUseCase interface {
	Execute(ctx context.Context, req *getSelectableDates.Request) (*getSelectableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
