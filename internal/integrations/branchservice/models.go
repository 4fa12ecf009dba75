package branchservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // HH:MM
	CloseTime *string `json:"close_time,omitempty"` // HH:MM
}

// WorkingHours расписание филиала по дням недели
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// BusinessCalendar модель календаря филиала из BranchService
type BusinessCalendar struct {
	BranchID     int64        `json:"branch_id"`
	HoursType    string       `json:"hours_type"`
	WorkingHours WorkingHours `json:"working_hours"`
}

// Holiday модель праздничного дня из BranchService
type Holiday struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Name      string  `json:"name"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

// HolidaysResponse ответ со списком праздников
type HolidaysResponse struct {
	BranchID int64     `json:"branch_id"`
	Holidays []Holiday `json:"holidays"`
}

// ErrorResponse модель ошибки от BranchService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует календарь в доменную модель
// Закрытые дни и дни без часов работы в календарь не попадают
func (c *BusinessCalendar) ToDomain() (domain.BusinessCalendar, error) {
	result := domain.BusinessCalendar{
		BranchID:  c.BranchID,
		HoursType: c.HoursType,
		Days:      make(map[time.Weekday]domain.TimeWindow),
	}

	days := map[time.Weekday]DaySchedule{
		time.Monday:    c.WorkingHours.Monday,
		time.Tuesday:   c.WorkingHours.Tuesday,
		time.Wednesday: c.WorkingHours.Wednesday,
		time.Thursday:  c.WorkingHours.Thursday,
		time.Friday:    c.WorkingHours.Friday,
		time.Saturday:  c.WorkingHours.Saturday,
		time.Sunday:    c.WorkingHours.Sunday,
	}

	for day, schedule := range days {
		if !schedule.IsOpen {
			continue
		}
		window, ok, err := parseWindow(schedule.OpenTime, schedule.CloseTime)
		if err != nil {
			return domain.BusinessCalendar{}, fmt.Errorf("%w: %s: %v", ErrInvalidResponse, day, err)
		}
		if ok {
			result.Days[day] = window
		}
	}

	return result, nil
}

// ToDomain конвертирует список праздников в доменную модель
func (r *HolidaysResponse) ToDomain() (domain.Holidays, error) {
	result := make(domain.Holidays, 0, len(r.Holidays))

	for _, h := range r.Holidays {
		date, err := time.ParseInLocation(domain.DateFormat, h.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: holiday date %q: %v", ErrInvalidResponse, h.Date, err)
		}

		holiday := domain.Holiday{Date: date, Name: h.Name}

		window, ok, err := parseWindow(h.OpenTime, h.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: holiday %s: %v", ErrInvalidResponse, h.Date, err)
		}
		if ok {
			holiday.Override = &window
		}

		result = append(result, holiday)
	}

	return result, nil
}

func parseWindow(openAt, closeAt *string) (domain.TimeWindow, bool, error) {
	if openAt == nil || closeAt == nil {
		return domain.TimeWindow{}, false, nil
	}

	openTime, err := types.NewTimeStringFromString(*openAt)
	if err != nil {
		return domain.TimeWindow{}, false, err
	}
	closeTime, err := types.NewTimeStringFromString(*closeAt)
	if err != nil {
		return domain.TimeWindow{}, false, err
	}
	if closeTime.IsBefore(openTime) {
		return domain.TimeWindow{}, false, fmt.Errorf("close %s before open %s", closeTime, openTime)
	}

	return domain.TimeWindow{Open: openTime, Close: closeTime}, true, nil
}
