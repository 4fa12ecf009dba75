package get_selectable_times

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// SlotKind какое поле формы заполняется
type SlotKind string

const (
	SlotStart SlotKind = "start"
	SlotEnd   SlotKind = "end"
)

// Request модель запроса времени для выбора
type Request struct {
	SessionID string            // ID сессии бронирования
	Date      time.Time         // Дата, для которой строится сетка (без времени)
	Slot      SlotKind          // start - время начала, end - время окончания
	Start     *types.TimeString // Выбранное время начала (для end на ту же дату)
}

// Response модель ответа с сеткой времени
type Response struct {
	Date           time.Time
	Slot           SlotKind
	DateSelectable bool // false - вся сетка недоступна
	Times          []domain.SelectableTime
}
