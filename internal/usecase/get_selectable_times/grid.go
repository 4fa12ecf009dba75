package get_selectable_times

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// buildTimeGrid строит сетку времени с шагом SlotGridStepMinutes
// и помечает каждое значение по часам работы и ограничениям формы
func buildTimeGrid(session *domain.SessionSnapshot, req *Request, now time.Time) []domain.SelectableTime {
	grid := domain.TimeGrid(domain.SlotGridStepMinutes)
	times := make([]domain.SelectableTime, 0, len(grid))

	for _, t := range grid {
		disabled := isForceDisabled(t, req, now)
		times = append(times, domain.SelectableTime{
			Time:       t,
			Selectable: session.TimeSelectable(t, req.Date, disabled),
		})
	}

	return times
}

// isForceDisabled отключает значение независимо от часов работы:
// прошедшее время сегодня и время окончания не позже выбранного начала
func isForceDisabled(t types.TimeString, req *Request, now time.Time) bool {
	if domain.SameDay(req.Date, now) && !t.On(req.Date).After(now) {
		return true
	}

	if req.Slot == SlotEnd && req.Start != nil && !t.IsAfter(*req.Start) {
		return true
	}

	return false
}

// disabledGrid сетка, в которой все значения недоступны
func disabledGrid() []domain.SelectableTime {
	grid := domain.TimeGrid(domain.SlotGridStepMinutes)
	times := make([]domain.SelectableTime, 0, len(grid))
	for _, t := range grid {
		times = append(times, domain.SelectableTime{Time: t})
	}
	return times
}
