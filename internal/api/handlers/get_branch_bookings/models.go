package get_branch_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// driverId, date (один день) или from/to, status, includeInactive
func ToServiceRequest(branchID int64, query url.Values) (*models.GetBranchBookingsRequest, error) {
	req := &models.GetBranchBookingsRequest{BranchID: branchID}

	if v := query.Get("driverId"); v != "" {
		driverID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid driverId value: %w", err)
		}
		req.DriverID = &driverID
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if date := query.Get("date"); date != "" {
		fromStr, toStr = date, date
	}

	if fromStr != "" {
		from, err := models.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := models.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
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
