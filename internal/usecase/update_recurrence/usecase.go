package update_recurrence

import (
	"context"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// UseCase use case изменения выбора повторения в форме бронирования.
// Не обращается к хранилищам, селектор weekly/monthly никогда не остается пустым.
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute применяет действие пользователя к текущему выбору
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateRecurrence: validation failed: %v", err)
		return nil, err
	}

	// 2. Применяем действие
	var next domain.RecurrencePattern
	switch req.Action {
	case ActionSelect:
		next = domain.OnPatternSelected(req.Kind, req.StartDate)
		// Дата окончания серии сохраняется при смене вида повторения
		if next.IsActive() {
			next.EndsOn = req.Current.EndsOn
		}
	case ActionToggleOff:
		next = domain.OnSelectorToggledOff(req.Current, *req.Item, req.StartDate)
	case ActionToggleOn:
		next = domain.OnSelectorToggledOn(req.Current, *req.Item)
	}

	uc.logger.Info("UpdateRecurrence: %s -> kind=%s, weekdays=%v, monthDays=%v",
		req.Action, next.Kind, next.Weekdays, next.MonthDays)

	return &Response{Pattern: next}, nil
}
