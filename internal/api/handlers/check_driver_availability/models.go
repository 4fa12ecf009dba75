package check_driver_availability

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_driver_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Start            string `json:"start" validate:"required"`
	End              string `json:"end" validate:"required"`
	EditingBookingID *int64 `json:"editingBookingId,omitempty" validate:"omitempty,gt=0"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Free      bool                   `json:"free"`
	Conflicts []handlers.ConflictDTO `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(driverID int64) (*checkAvailability.Request, error) {
	start, err := models.ParseDateTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := models.ParseDateTime(r.End)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		DriverID:         driverID,
		Start:            start,
		End:              end,
		EditingBookingID: r.EditingBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Free:      resp.Free,
		Conflicts: handlers.FromDomainConflicts(resp.Conflicts),
	}
}
