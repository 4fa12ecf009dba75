package domain

import "time"

// Vehicle fleet vehicle with its last recorded odometer reading
type Vehicle struct {
	ID             int64
	OrganizationID int64
	BranchID       int64
	Odometer       float64
	UpdatedAt      time.Time
}

// Incident driver-reported event, optionally updating the vehicle's odometer
type Incident struct {
	ID          int64
	VehicleID   int64
	BookingID   *int64
	DriverID    int64
	Description string
	Odometer    *float64
	OccurredAt  time.Time
	CreatedAt   time.Time
}
