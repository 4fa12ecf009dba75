package update_recurrence

import (
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	updateRecurrence "github.com/m04kA/SMC-FleetBookingService/internal/usecase/update_recurrence"
)

// UpdateRecurrenceRequest HTTP request model
type UpdateRecurrenceRequest struct {
	Action    string               `json:"action" validate:"required,oneof=select toggle_off toggle_on"`
	Current   models.RecurrenceDTO `json:"current"`
	Kind      string               `json:"kind,omitempty" validate:"omitempty,oneof=none daily weekly monthly"`
	Item      *int                 `json:"item,omitempty"`
	StartDate string               `json:"startDate" validate:"required"` // YYYY-MM-DD
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRecurrenceRequest) ToUseCaseRequest() (*updateRecurrence.Request, error) {
	startDate, err := models.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	current, err := r.Current.ToDomain()
	if err != nil {
		return nil, err
	}

	return &updateRecurrence.Request{
		Action:    updateRecurrence.Action(r.Action),
		Current:   current,
		Kind:      domain.RecurrenceKind(r.Kind),
		Item:      r.Item,
		StartDate: startDate,
	}, nil
}
