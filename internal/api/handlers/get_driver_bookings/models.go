package get_driver_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from, to - даты YYYY-MM-DD включительно; status; includeInactive
func ToServiceRequest(driverID int64, query url.Values) (*models.GetDriverBookingsRequest, error) {
	req := &models.GetDriverBookingsRequest{DriverID: driverID}

	if v := query.Get("from"); v != "" {
		from, err := models.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if v := query.Get("to"); v != "" {
		to, err := models.ParseDate(v)
		if err != nil {
			return nil, err
		}
		// Дата окончания включительно
		next := to.AddDate(0, 0, 1)
		req.To = &next
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
