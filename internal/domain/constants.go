package domain

// Default policy values, used when a setting is absent
const (
	DefaultMaxAdvanceMonths        = 0 // 0 = unlimited
	DefaultTimeWindowRestricted    = true
	DefaultManualExtensionAllowed  = false
	DefaultBookingRequiresApproval = false
	DefaultOdometerTolerance       = 0.10
)

// Business validation constants
const (
	MaxAdvanceMonths      = 24
	MaxOdometerTolerance  = 1.0
	SlotGridStepMinutes   = 15
	MaxSelectableDaysSpan = 92
	MaxNotesLength        = 500
	MaxReasonLength       = 500
	MaxIncidentLength     = 2000
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // local wall-clock, no zone
)

// ConflictingStatuses statuses that block a driver's window
var ConflictingStatuses = []BookingStatus{
	StatusApproved,
	StatusInProgress,
}

// AllStatuses every known booking status
var AllStatuses = []BookingStatus{
	StatusPendingApproval,
	StatusApproved,
	StatusInProgress,
	StatusCompleted,
	StatusDeclined,
	StatusCancelled,
}

// TerminalStatuses statuses of bookings that no longer occupy anything
func TerminalStatuses() []BookingStatus {
	result := make([]BookingStatus, 0, len(AllStatuses))
	for _, s := range AllStatuses {
		if s.IsTerminal() {
			result = append(result, s)
		}
	}
	return result
}
