package update_recurrence

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Action действие пользователя над выбором повторения
type Action string

const (
	ActionSelect    Action = "select"     // выбор вида повторения
	ActionToggleOff Action = "toggle_off" // снятие дня недели или числа месяца
	ActionToggleOn  Action = "toggle_on"  // добавление дня недели или числа месяца
)

// Request модель запроса
type Request struct {
	Action    Action
	Current   domain.RecurrencePattern // Текущее состояние выбора
	Kind      domain.RecurrenceKind    // Для select
	Item      *int                     // Для toggle: день недели (0..6) или число месяца (1..31)
	StartDate time.Time                // Дата начала бронирования, источник начального выбора
}

// Response модель ответа
type Response struct {
	Pattern domain.RecurrencePattern
}
