package start_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	branchClient "github.com/m04kA/SMC-FleetBookingService/internal/integrations/branchservice"
)

// UseCase use case открытия сессии бронирования
// Календарь, праздники и политика загружаются один раз и больше не обновляются
type UseCase struct {
	branchClient   BranchServiceClient
	policyProvider PolicyProvider
	sessionStore   SessionStore
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	branchClient BranchServiceClient,
	policyProvider PolicyProvider,
	sessionStore SessionStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		branchClient:   branchClient,
		policyProvider: policyProvider,
		sessionStore:   sessionStore,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case открытия сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartSession: organization=%d, branch=%d, driver=%d", req.OrganizationID, req.BranchID, req.DriverID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем календарь филиала
	calendarResp, err := uc.branchClient.GetBusinessCalendar(ctx, req.BranchID)
	if err != nil {
		return nil, uc.branchError("calendar", req.BranchID, err)
	}

	calendar, err := calendarResp.ToDomain()
	if err != nil {
		uc.logger.Error("StartSession: invalid calendar for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: calendar: %v", ErrTransport, err)
	}

	// 3. Загружаем праздники филиала
	holidaysResp, err := uc.branchClient.GetHolidays(ctx, req.BranchID)
	if err != nil {
		return nil, uc.branchError("holidays", req.BranchID, err)
	}

	holidays, err := holidaysResp.ToDomain()
	if err != nil {
		uc.logger.Error("StartSession: invalid holidays for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: holidays: %v", ErrTransport, err)
	}

	// 4. Загружаем политику организации
	policy, err := uc.policyProvider.GetPolicy(ctx, req.OrganizationID)
	if err != nil {
		uc.logger.Error("StartSession: failed to get policy for organization=%d: %v", req.OrganizationID, err)
		if errors.Is(err, domain.ErrTransport) {
			return nil, fmt.Errorf("%w: policy: %v", ErrTransport, err)
		}
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 5. Сохраняем неизменяемый снимок
	snapshot := &domain.SessionSnapshot{
		OrganizationID: req.OrganizationID,
		BranchID:       req.BranchID,
		DriverID:       req.DriverID,
		Calendar:       calendar,
		Holidays:       holidays,
		Policy:         *policy,
		LoadedAt:       uc.timeProvider.Now(),
	}

	saved, err := uc.sessionStore.Save(ctx, snapshot)
	if err != nil {
		uc.logger.Error("StartSession: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrTransport, err)
	}

	uc.logger.Info("StartSession: session id=%s opened, working days=%v, holidays=%d",
		saved.ID, calendar.WorkingDays(), len(holidays))

	return &Response{Session: saved}, nil
}

func (uc *UseCase) branchError(what string, branchID int64, err error) error {
	if errors.Is(err, branchClient.ErrBranchNotFound) {
		uc.logger.Warn("StartSession: branch id=%d not found", branchID)
		return ErrBranchNotFound
	}
	uc.logger.Error("StartSession: failed to get %s for branch=%d: %v", what, branchID, err)
	return fmt.Errorf("%w: %s: %v", ErrTransport, what, err)
}
