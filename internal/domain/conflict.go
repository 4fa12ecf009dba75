package domain

// DriverBookingConflict an existing active booking overlapping the proposed window
type DriverBookingConflict struct {
	BookingID int64
	VehicleID int64
	Status    BookingStatus
	Window    BookingWindow
}

// DriverAvailability Free when Conflicts is empty, Conflicting otherwise
type DriverAvailability struct {
	Conflicts []DriverBookingConflict
}

// IsFree returns true when nothing blocks the driver
func (a DriverAvailability) IsFree() bool {
	return len(a.Conflicts) == 0
}

// ClassifyAvailability drops the booking being edited from the conflict set;
// a self-conflict alone is not a conflict.
func ClassifyAvailability(conflicts []DriverBookingConflict, editingBookingID *int64) DriverAvailability {
	remaining := make([]DriverBookingConflict, 0, len(conflicts))
	for _, c := range conflicts {
		if editingBookingID != nil && c.BookingID == *editingBookingID {
			continue
		}
		remaining = append(remaining, c)
	}
	return DriverAvailability{Conflicts: remaining}
}
