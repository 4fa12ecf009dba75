package get_selectable_times

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
	getSelectableTimes "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_times"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// TimeDTO значение сетки времени
type TimeDTO struct {
	Time       string `json:"time"` // "09:15"
	Selectable bool   `json:"selectable"`
}

// SelectableTimesResponse HTTP response model
type SelectableTimesResponse struct {
	Date           string    `json:"date"`
	Slot           string    `json:"slot"`
	DateSelectable bool      `json:"dateSelectable"`
	Times          []TimeDTO `json:"times"`
}

// ToUseCaseRequest формирует запрос из query параметров date, slot и start
func ToUseCaseRequest(sessionID string, query url.Values) (*getSelectableTimes.Request, error) {
	date, err := models.ParseDate(query.Get("date"))
	if err != nil {
		return nil, err
	}

	slot := getSelectableTimes.SlotKind(query.Get("slot"))
	if slot == "" {
		slot = getSelectableTimes.SlotStart
	}
	if slot != getSelectableTimes.SlotStart && slot != getSelectableTimes.SlotEnd {
		return nil, fmt.Errorf("unknown slot %q", slot)
	}

	req := &getSelectableTimes.Request{SessionID: sessionID, Date: date, Slot: slot}

	if v := query.Get("start"); v != "" {
		start, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, err
		}
		req.Start = &start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSelectableTimes.Response) *SelectableTimesResponse {
	times := make([]TimeDTO, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, TimeDTO{Time: t.Time.String(), Selectable: t.Selectable})
	}

	return &SelectableTimesResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		Slot:           string(resp.Slot),
		DateSelectable: resp.DateSelectable,
		Times:          times,
	}
}
