package start_session

import "github.com/m04kA/SMC-FleetBookingService/internal/domain"

// Request модель запроса на открытие сессии бронирования
type Request struct {
	OrganizationID int64 // ID организации (источник политики)
	BranchID       int64 // ID филиала (источник календаря и праздников)
	DriverID       int64 // ID водителя, для которого открывается сессия
}

// Response модель ответа с сохраненным снимком сессии
type Response struct {
	Session *domain.SessionSnapshot
}
