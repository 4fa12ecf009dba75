package models

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек организации
// Ключи - именованные настройки (advance_booking_months, exclude_weekends, ...)
type UpdateSettingsRequest struct {
	OrganizationID int64             `json:"organizationId"`
	Settings       map[string]string `json:"settings"`
}

// PolicyResponse ответ с типизированной политикой организации
type PolicyResponse struct {
	OrganizationID             int64   `json:"organizationId"`
	AdvanceBookingMonths       int     `json:"advanceBookingMonths"` // 0 - без ограничения
	ExcludeWeekends            bool    `json:"excludeWeekends"`
	ExcludeHolidays            bool    `json:"excludeHolidays"`
	TimeWindowRestriction      bool    `json:"timeWindowRestriction"`
	TimeWindowScope            string  `json:"timeWindowScope"` // all_branches | excluded_branches
	TimeWindowExcludedBranches []int64 `json:"timeWindowExcludedBranches"`
	ManualExtensionAllowed     bool    `json:"manualExtensionAllowed"`
	BookingRequiresApproval    bool    `json:"bookingRequiresApproval"`
	OdometerDeviationTolerance float64 `json:"odometerDeviationTolerance"`
}

// FromDomainPolicy конвертирует доменную политику в response
func FromDomainPolicy(p domain.OrganizationPolicy) *PolicyResponse {
	excluded := p.TimeWindowScope.ExcludedBranchIDs
	if excluded == nil {
		excluded = []int64{}
	}

	return &PolicyResponse{
		OrganizationID:             p.OrganizationID,
		AdvanceBookingMonths:       p.MaxAdvanceMonths,
		ExcludeWeekends:            p.ExcludeWeekends,
		ExcludeHolidays:            p.ExcludeHolidays,
		TimeWindowRestriction:      p.TimeWindowRestricted,
		TimeWindowScope:            string(p.TimeWindowScope.Kind),
		TimeWindowExcludedBranches: excluded,
		ManualExtensionAllowed:     p.ManualExtensionAllowed,
		BookingRequiresApproval:    p.BookingRequiresApproval,
		OdometerDeviationTolerance: p.OdometerTolerance,
	}
}
