package start_session

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	policyModels "github.com/m04kA/SMC-FleetBookingService/internal/service/policy/models"
	startSession "github.com/m04kA/SMC-FleetBookingService/internal/usecase/start_session"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	OrganizationID int64 `json:"organizationId" validate:"required,gt=0"`
	BranchID       int64 `json:"branchId" validate:"required,gt=0"`
}

// HoursDTO часы работы дня
type HoursDTO struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// HolidayDTO праздник филиала
type HolidayDTO struct {
	Date     string    `json:"date"`
	Name     string    `json:"name"`
	Override *HoursDTO `json:"override,omitempty"`
}

// SessionResponse HTTP response model: снимок календаря, праздников и политики
type SessionResponse struct {
	SessionID      string                       `json:"sessionId"`
	OrganizationID int64                        `json:"organizationId"`
	BranchID       int64                        `json:"branchId"`
	DriverID       int64                        `json:"driverId"`
	WorkingHours   map[string]HoursDTO          `json:"workingHours"` // monday..sunday, закрытые дни отсутствуют
	Holidays       []HolidayDTO                 `json:"holidays"`
	Policy         *policyModels.PolicyResponse `json:"policy"`
	LoadedAt       string                       `json:"loadedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartSessionRequest) ToUseCaseRequest(driverID int64) *startSession.Request {
	return &startSession.Request{
		OrganizationID: r.OrganizationID,
		BranchID:       r.BranchID,
		DriverID:       driverID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startSession.Response) *SessionResponse {
	s := resp.Session

	hours := make(map[string]HoursDTO, len(s.Calendar.Days))
	for day, window := range s.Calendar.Days {
		hours[strings.ToLower(day.String())] = HoursDTO{Open: window.Open.String(), Close: window.Close.String()}
	}

	holidays := make([]HolidayDTO, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		dto := HolidayDTO{Date: h.Date.Format(domain.DateFormat), Name: h.Name}
		if h.Override != nil {
			dto.Override = &HoursDTO{Open: h.Override.Open.String(), Close: h.Override.Close.String()}
		}
		holidays = append(holidays, dto)
	}

	return &SessionResponse{
		SessionID:      s.ID,
		OrganizationID: s.OrganizationID,
		BranchID:       s.BranchID,
		DriverID:       s.DriverID,
		WorkingHours:   hours,
		Holidays:       holidays,
		Policy:         policyModels.FromDomainPolicy(s.Policy),
		LoadedAt:       s.LoadedAt.Format(time.RFC3339),
	}
}
