package log_incident

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	logIncident "github.com/m04kA/SMC-FleetBookingService/internal/usecase/log_incident"
)

// LogIncidentRequest HTTP request model
type LogIncidentRequest struct {
	OrganizationID int64    `json:"organizationId" validate:"required,gt=0"`
	BookingID      *int64   `json:"bookingId,omitempty" validate:"omitempty,gt=0"`
	Description    string   `json:"description" validate:"required,max=2000"`
	Odometer       *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	OccurredAt     *string  `json:"occurredAt,omitempty"` // "2026-03-02T14:30", по умолчанию текущее время
}

// IncidentResponse HTTP response model
type IncidentResponse struct {
	ID          int64    `json:"id"`
	VehicleID   int64    `json:"vehicleId"`
	BookingID   *int64   `json:"bookingId,omitempty"`
	DriverID    int64    `json:"driverId"`
	Description string   `json:"description"`
	Odometer    *float64 `json:"odometer,omitempty"`
	OccurredAt  string   `json:"occurredAt"`
	CreatedAt   string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LogIncidentRequest) ToUseCaseRequest(vehicleID, driverID int64) (*logIncident.Request, error) {
	req := &logIncident.Request{
		OrganizationID: r.OrganizationID,
		VehicleID:      vehicleID,
		DriverID:       driverID,
		BookingID:      r.BookingID,
		Description:    r.Description,
		Odometer:       r.Odometer,
	}

	if r.OccurredAt != nil {
		occurredAt, err := models.ParseDateTime(*r.OccurredAt)
		if err != nil {
			return nil, err
		}
		req.OccurredAt = &occurredAt
	}

	return req, nil
}

// FromDomainIncident конвертирует инцидент в HTTP response
func FromDomainIncident(i *domain.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          i.ID,
		VehicleID:   i.VehicleID,
		BookingID:   i.BookingID,
		DriverID:    i.DriverID,
		Description: i.Description,
		Odometer:    i.Odometer,
		OccurredAt:  i.OccurredAt.Format(domain.DateTimeFormat),
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
	}
}
