package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDateTime возвращается при некорректной дате/времени
	ErrInvalidDateTime = errors.New("invalid date or time")

	// ErrInvalidRecurrence возвращается при некорректном описании повторения
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetDriverBookingsRequest запрос на получение бронирований водителя
type GetDriverBookingsRequest struct {
	DriverID        int64      `json:"driverId"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// GetBranchBookingsRequest запрос на получение бронирований филиала
type GetBranchBookingsRequest struct {
	BranchID        int64      `json:"branchId"`
	DriverID        *int64     `json:"driverId,omitempty"` // Фильтр по водителю (опционально)
	From            *time.Time `json:"from,omitempty"`     // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`       // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDriverBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		DriverID:        &r.DriverID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}
	return withStatus(filter, r.Status)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBranchBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		BranchID:        &r.BranchID,
		DriverID:        r.DriverID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}
	return withStatus(filter, r.Status)
}

func withStatus(filter domain.BookingsFilter, status *string) (domain.BookingsFilter, error) {
	if status == nil {
		return filter, nil
	}
	s, err := ToDomainBookingStatus(*status)
	if err != nil {
		return filter, err
	}
	filter.Status = &s
	return filter, nil
}

// RecurrenceDTO описание повторения в API
// weekdays: 0 - воскресенье ... 6 - суббота; monthDays: 1..31
type RecurrenceDTO struct {
	Kind      string  `json:"kind" validate:"omitempty,oneof=none daily weekly monthly"`
	Weekdays  []int   `json:"weekdays,omitempty" validate:"omitempty,dive,min=0,max=6"`
	MonthDays []int   `json:"monthDays,omitempty" validate:"omitempty,dive,min=1,max=31"`
	EndsOn    *string `json:"endsOn,omitempty"` // YYYY-MM-DD
}

// ToDomain конвертирует DTO в паттерн повторения
// Пустой DTO означает отсутствие повторения
func (r *RecurrenceDTO) ToDomain() (domain.RecurrencePattern, error) {
	if r == nil || r.Kind == "" {
		return domain.NoRecurrence(), nil
	}

	p := domain.RecurrencePattern{Kind: domain.RecurrenceKind(r.Kind)}
	for _, d := range r.Weekdays {
		p.Weekdays = append(p.Weekdays, time.Weekday(d))
	}
	p.MonthDays = append(p.MonthDays, r.MonthDays...)

	if r.EndsOn != nil && strings.TrimSpace(*r.EndsOn) != "" {
		endsOn, err := ParseDate(*r.EndsOn)
		if err != nil {
			return domain.RecurrencePattern{}, fmt.Errorf("%w: endsOn: %v", ErrInvalidRecurrence, err)
		}
		p.EndsOn = &endsOn
	}

	return p, nil
}

// FromDomainRecurrence конвертирует паттерн повторения в DTO
func FromDomainRecurrence(p domain.RecurrencePattern) RecurrenceDTO {
	dto := RecurrenceDTO{Kind: string(p.Kind)}
	if dto.Kind == "" {
		dto.Kind = string(domain.RecurrenceNone)
	}
	for _, d := range p.Weekdays {
		dto.Weekdays = append(dto.Weekdays, int(d))
	}
	dto.MonthDays = append(dto.MonthDays, p.MonthDays...)
	if p.EndsOn != nil {
		endsOn := p.EndsOn.Format(domain.DateFormat)
		dto.EndsOn = &endsOn
	}
	return dto
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organizationId"`
	BranchID       int64         `json:"branchId"`
	DriverID       int64         `json:"driverId"`
	VehicleID      int64         `json:"vehicleId"`
	Status         string        `json:"status"`
	Start          string        `json:"start"` // "2026-03-02T09:00"
	End            string        `json:"end"`
	IsRecurring    bool          `json:"isRecurring"`
	Recurrence     RecurrenceDTO `json:"recurrence"`

	StartOdometer *float64 `json:"startOdometer,omitempty"`
	EndOdometer   *float64 `json:"endOdometer,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		OrganizationID:     b.OrganizationID,
		BranchID:           b.BranchID,
		DriverID:           b.DriverID,
		VehicleID:          b.VehicleID,
		Status:             string(b.Status),
		Start:              b.Window.Start.Format(domain.DateTimeFormat),
		End:                b.Window.End.Format(domain.DateTimeFormat),
		IsRecurring:        b.IsRecurring(),
		Recurrence:         FromDomainRecurrence(b.Recurrence),
		StartOdometer:      b.StartOdometer,
		EndOdometer:        b.EndOdometer,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD в локальной зоне
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	return t, nil
}

// ParseDateTime разбирает дату-время в формате YYYY-MM-DDTHH:MM в локальной зоне
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	return t, nil
}
