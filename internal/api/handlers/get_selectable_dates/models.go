package get_selectable_dates

import (
	"net/url"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	getSelectableDates "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_dates"
)

// DateDTO дата календаря выбора
type DateDTO struct {
	Date       string  `json:"date"`
	Selectable bool    `json:"selectable"`
	Holiday    *string `json:"holiday,omitempty"`
}

// SelectableDatesResponse HTTP response model
type SelectableDatesResponse struct {
	SessionID string    `json:"sessionId"`
	Dates     []DateDTO `json:"dates"`
}

// ToUseCaseRequest формирует запрос из query параметров from и to (YYYY-MM-DD)
func ToUseCaseRequest(sessionID string, query url.Values) (*getSelectableDates.Request, error) {
	from, err := models.ParseDate(query.Get("from"))
	if err != nil {
		return nil, err
	}

	to, err := models.ParseDate(query.Get("to"))
	if err != nil {
		return nil, err
	}

	return &getSelectableDates.Request{SessionID: sessionID, From: from, To: to}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSelectableDates.Response) *SelectableDatesResponse {
	dates := make([]DateDTO, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, DateDTO{
			Date:       d.Date.Format(domain.DateFormat),
			Selectable: d.Selectable,
			Holiday:    d.Holiday,
		})
	}

	return &SelectableDatesResponse{SessionID: resp.SessionID, Dates: dates}
}
