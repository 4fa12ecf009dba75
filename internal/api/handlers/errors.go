package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

const (
	msgValidation      = "некорректные данные запроса"
	msgPolicyViolation = "операция запрещена правилами организации или статусом бронирования"
	msgConflict        = "у водителя есть пересекающиеся бронирования"
	msgDeviation       = "показание одометра сильно отличается от предыдущего, требуется подтверждение"
	msgTransport       = "сервис временно недоступен, повторите попытку позже"
	confirmSuffix      = "/confirm"
)

// ConflictDTO пересекающееся бронирование водителя
type ConflictDTO struct {
	BookingID int64  `json:"bookingId"`
	VehicleID int64  `json:"vehicleId"`
	Status    string `json:"status"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ConflictResponse ответ 409 со списком пересечений
type ConflictResponse struct {
	ErrorResponse
	Conflicts []ConflictDTO `json:"conflicts"`
}

// DeviationResponse ответ 428: повторить запрос на .../confirm, чтобы принять показание
type DeviationResponse struct {
	ErrorResponse
	Deviation        float64 `json:"deviation"`
	DeviationPercent float64 `json:"deviationPercent"`
	Confirm          string  `json:"confirm"`
}

// FromDomainConflicts конвертирует пересечения в DTO
func FromDomainConflicts(conflicts []domain.DriverBookingConflict) []ConflictDTO {
	result := make([]ConflictDTO, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, ConflictDTO{
			BookingID: c.BookingID,
			VehicleID: c.VehicleID,
			Status:    string(c.Status),
			Start:     c.Window.Start.Format(domain.DateTimeFormat),
			End:       c.Window.End.Format(domain.DateTimeFormat),
		})
	}
	return result
}

// RespondDomainError отвечает по таксономии ошибок домена.
// Возвращает false, если ошибка не относится к таксономии, и ответ не записан.
func RespondDomainError(w http.ResponseWriter, r *http.Request, err error) bool {
	var conflictErr *domain.ConflictError
	var deviationErr *domain.DeviationConfirmationRequiredError

	switch {
	case errors.As(err, &conflictErr):
		RespondJSON(w, http.StatusConflict, ConflictResponse{
			ErrorResponse: ErrorResponse{Code: http.StatusConflict, Message: msgConflict},
			Conflicts:     FromDomainConflicts(conflictErr.Conflicts),
		})

	case errors.As(err, &deviationErr):
		RespondJSON(w, http.StatusPreconditionRequired, DeviationResponse{
			ErrorResponse:    ErrorResponse{Code: http.StatusPreconditionRequired, Message: msgDeviation},
			Deviation:        deviationErr.Deviation,
			DeviationPercent: deviationErr.Deviation * 100,
			Confirm:          r.URL.Path + confirmSuffix,
		})

	case errors.Is(err, domain.ErrValidation):
		RespondBadRequest(w, validationMessage(err))

	case errors.Is(err, domain.ErrPolicyViolation):
		RespondError(w, http.StatusUnprocessableEntity, msgPolicyViolation)

	case errors.Is(err, domain.ErrTransport):
		RespondError(w, http.StatusBadGateway, msgTransport)

	default:
		return false
	}

	return true
}

// validationMessage текст ошибки валидации отдается клиенту как есть: он не содержит внутренних деталей
func validationMessage(err error) string {
	return msgValidation + ": " + err.Error()
}
