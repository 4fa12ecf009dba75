package get_selectable_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	sessionStore "github.com/m04kA/SMC-FleetBookingService/internal/infra/session"
)

// UseCase use case получения дат, доступных для выбора
type UseCase struct {
	sessionStore SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionStore SessionStore, logger Logger) *UseCase {
	return &UseCase{
		sessionStore: sessionStore,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
// Каждая дата диапазона помечается доступной или недоступной по снимку сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSelectableDates: session=%s, from=%s, to=%s",
		req.SessionID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSelectableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем снимок сессии
	session, err := uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("GetSelectableDates: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSelectableDates: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrTransport, err)
	}

	// 3. Помечаем даты
	now := uc.timeProvider.Now()
	dates := make([]domain.SelectableDate, 0)
	last := domain.StartOfDay(req.To)

	for day := domain.StartOfDay(req.From); !day.After(last); day = day.AddDate(0, 0, 1) {
		item := domain.SelectableDate{
			Date:       day,
			Selectable: session.DateSelectable(day, now),
		}
		if holiday, ok := session.Holidays.Find(day); ok {
			name := holiday.Name
			item.Holiday = &name
		}
		dates = append(dates, item)
	}

	uc.logger.Info("GetSelectableDates: session=%s, %d dates evaluated", req.SessionID, len(dates))

	return &Response{SessionID: session.ID, Dates: dates}, nil
}
