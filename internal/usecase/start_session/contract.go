package start_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/branchservice"
)

// BranchServiceClient интерфейс клиента BranchService
type BranchServiceClient interface {
	GetBusinessCalendar(ctx context.Context, branchID int64) (*branchservice.BusinessCalendar, error)
	GetHolidays(ctx context.Context, branchID int64) (*branchservice.HolidaysResponse, error)
}

// PolicyProvider интерфейс получения политики организации
type PolicyProvider interface {
	GetPolicy(ctx context.Context, organizationID int64) (*domain.OrganizationPolicy, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, snapshot *domain.SessionSnapshot) (*domain.SessionSnapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
