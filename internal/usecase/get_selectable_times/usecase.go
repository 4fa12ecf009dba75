package get_selectable_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	sessionStore "github.com/m04kA/SMC-FleetBookingService/internal/infra/session"
)

// UseCase use case получения сетки времени для выбора начала или окончания
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
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSelectableTimes: session=%s, date=%s, slot=%s",
		req.SessionID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSelectableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем снимок сессии
	session, err := uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("GetSelectableTimes: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSelectableTimes: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrTransport, err)
	}

	now := uc.timeProvider.Now()
	resp := &Response{
		Date:           domain.StartOfDay(req.Date),
		Slot:           req.Slot,
		DateSelectable: session.DateSelectable(req.Date, now),
	}

	// 3. Недоступная дата - вся сетка недоступна
	if !resp.DateSelectable {
		uc.logger.Info("GetSelectableTimes: date %s is not selectable", req.Date.Format(domain.DateFormat))
		resp.Times = disabledGrid()
		return resp, nil
	}

	// 4. Строим сетку
	resp.Times = buildTimeGrid(session, req, now)

	return resp, nil
}
