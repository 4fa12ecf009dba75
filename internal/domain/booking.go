package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingApproval BookingStatus = "pending_approval"
	StatusApproved        BookingStatus = "approved"
	StatusInProgress      BookingStatus = "in_progress"
	StatusCompleted       BookingStatus = "completed"
	StatusDeclined        BookingStatus = "declined"
	StatusCancelled       BookingStatus = "cancelled"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses no transition leaves
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDeclined || s == StatusCancelled
}

// BookingWindow is a local wall-clock interval [Start, End)
type BookingWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true when the window has positive length
func (w BookingWindow) IsValid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && w.End.After(w.Start)
}

// SpansSingleDay returns true when start and end fall on the same calendar date
func (w BookingWindow) SpansSingleDay() bool {
	return SameDay(w.Start, w.End)
}

// Booking represents a vehicle booking owned by the backend of record
type Booking struct {
	ID             int64
	OrganizationID int64
	BranchID       int64
	DriverID       int64
	VehicleID      int64
	Status         BookingStatus
	Window         BookingWindow
	Recurrence     RecurrencePattern

	// Odometer readings recorded at check-out and check-in
	StartOdometer *float64
	EndOdometer   *float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRecurring returns true when the booking carries an active recurrence pattern
func (b *Booking) IsRecurring() bool {
	return b.Recurrence.IsActive()
}

// CanCheckOut returns true if the vehicle can be picked up
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusApproved
}

// CanCheckIn returns true if the vehicle can be returned
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusInProgress
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusApproved
}

// CanBeExtended returns true if the trip is running and already past its end.
// The organization flag is checked separately.
func (b *Booking) CanBeExtended(now time.Time) bool {
	return b.Status == StatusInProgress && now.After(b.Window.End)
}

// CanBeEdited returns true while the booking has not started and is still open
func (b *Booking) CanBeEdited(now time.Time) bool {
	if b.Status != StatusPendingApproval && b.Status != StatusApproved {
		return false
	}
	return b.Window.Start.After(now)
}

// BookingsFilter filter for listing bookings of a branch or driver
type BookingsFilter struct {
	BranchID        *int64
	DriverID        *int64
	From            *time.Time // window.end > From
	To              *time.Time // window.start < To
	Status          *BookingStatus
	IncludeInactive bool
}

// TransitionKind names a lifecycle transition
type TransitionKind string

const (
	TransitionCheckOut TransitionKind = "check_out"
	TransitionCheckIn  TransitionKind = "check_in"
	TransitionCancel   TransitionKind = "cancel"
	TransitionExtend   TransitionKind = "extend"
)

// Transition is applied only if the stored status still equals From
type Transition struct {
	Kind     TransitionKind
	From     BookingStatus
	To       BookingStatus
	Odometer *float64   // check_out: start reading, check_in: end reading
	NewEnd   *time.Time // extend
	Reason   *string    // cancel
}

// SameDay reports whether two times fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
