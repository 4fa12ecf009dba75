package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Setting keys of the organization_settings table
const (
	SettingAdvanceBookingMonths       = "advance_booking_months"
	SettingExcludeWeekends            = "exclude_weekends"
	SettingExcludeHolidays            = "exclude_holidays"
	SettingTimeWindowRestriction      = "time_window_restriction"
	SettingTimeWindowExcludedBranches = "time_window_excluded_branches"
	SettingManualExtensionAllowed     = "manual_extension_allowed"
	SettingBookingRequiresApproval    = "booking_requires_approval"
	SettingOdometerTolerance          = "odometer_deviation_tolerance"
)

// KnownSettings lists every key PolicyFromSettings understands
var KnownSettings = []string{
	SettingAdvanceBookingMonths,
	SettingExcludeWeekends,
	SettingExcludeHolidays,
	SettingTimeWindowRestriction,
	SettingTimeWindowExcludedBranches,
	SettingManualExtensionAllowed,
	SettingBookingRequiresApproval,
	SettingOdometerTolerance,
}

// ErrInvalidPolicySetting is returned for a setting value that cannot be parsed
var ErrInvalidPolicySetting = fmt.Errorf("%w: invalid organization setting", ErrValidation)

// ErrUnknownPolicySetting is returned when writing a key that is not known
var ErrUnknownPolicySetting = fmt.Errorf("%w: unknown organization setting", ErrValidation)

// TimeWindowScopeKind tells which branches the time-of-day restriction applies to
type TimeWindowScopeKind string

const (
	ScopeAllBranches      TimeWindowScopeKind = "all_branches"
	ScopeExcludedBranches TimeWindowScopeKind = "excluded_branches"
)

// TimeWindowScope branches listed in ExcludedBranchIDs are not restricted
type TimeWindowScope struct {
	Kind              TimeWindowScopeKind
	ExcludedBranchIDs []int64
}

// Excludes reports whether the branch is opted out of the time-of-day restriction.
// Matching is exact equality of branch ids.
func (s TimeWindowScope) Excludes(branchID int64) bool {
	if s.Kind != ScopeExcludedBranches {
		return false
	}
	for _, id := range s.ExcludedBranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}

// OrganizationPolicy booking restrictions resolved once per session
type OrganizationPolicy struct {
	OrganizationID          int64
	MaxAdvanceMonths        int // 0 = unlimited
	ExcludeWeekends         bool
	ExcludeHolidays         bool
	TimeWindowRestricted    bool // false disables the time-of-day restriction for every branch
	TimeWindowScope         TimeWindowScope
	ManualExtensionAllowed  bool
	BookingRequiresApproval bool
	OdometerTolerance       float64
}

// DefaultPolicy returns the policy of an organization without settings
func DefaultPolicy(organizationID int64) OrganizationPolicy {
	return OrganizationPolicy{
		OrganizationID:          organizationID,
		MaxAdvanceMonths:        DefaultMaxAdvanceMonths,
		TimeWindowRestricted:    DefaultTimeWindowRestricted,
		TimeWindowScope:         TimeWindowScope{Kind: ScopeAllBranches},
		ManualExtensionAllowed:  DefaultManualExtensionAllowed,
		BookingRequiresApproval: DefaultBookingRequiresApproval,
		OdometerTolerance:       DefaultOdometerTolerance,
	}
}

// HasAdvanceBookingLimit returns true if there's a horizon on how far ahead bookings can start
func (p OrganizationPolicy) HasAdvanceBookingLimit() bool {
	return p.MaxAdvanceMonths > 0
}

// MaxBookingDate returns the last selectable date (inclusive) or false when unlimited
func (p OrganizationPolicy) MaxBookingDate(now time.Time) (time.Time, bool) {
	if !p.HasAdvanceBookingLimit() {
		return time.Time{}, false
	}
	return StartOfDay(now).AddDate(0, p.MaxAdvanceMonths, 0), true
}

// IsTimeRestricted reports whether business hours bound booking times at the branch
func (p OrganizationPolicy) IsTimeRestricted(branchID int64) bool {
	return p.TimeWindowRestricted && !p.TimeWindowScope.Excludes(branchID)
}

// PolicyFromSettings maps named settings into the typed policy.
// Missing keys keep their defaults, unknown keys are ignored.
func PolicyFromSettings(organizationID int64, settings map[string]string) (OrganizationPolicy, error) {
	p := DefaultPolicy(organizationID)
	var errs []error

	for key, raw := range settings {
		value := strings.TrimSpace(raw)
		var err error

		switch key {
		case SettingAdvanceBookingMonths:
			p.MaxAdvanceMonths, err = parseMonths(value)
		case SettingExcludeWeekends:
			p.ExcludeWeekends, err = strconv.ParseBool(value)
		case SettingExcludeHolidays:
			p.ExcludeHolidays, err = strconv.ParseBool(value)
		case SettingTimeWindowRestriction:
			p.TimeWindowRestricted, err = strconv.ParseBool(value)
		case SettingTimeWindowExcludedBranches:
			var ids []int64
			ids, err = ParseBranchList(value)
			if err == nil && len(ids) > 0 {
				p.TimeWindowScope = TimeWindowScope{Kind: ScopeExcludedBranches, ExcludedBranchIDs: ids}
			}
		case SettingManualExtensionAllowed:
			p.ManualExtensionAllowed, err = strconv.ParseBool(value)
		case SettingBookingRequiresApproval:
			p.BookingRequiresApproval, err = strconv.ParseBool(value)
		case SettingOdometerTolerance:
			p.OdometerTolerance, err = parseTolerance(value)
		default:
			continue
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %v", key, raw, err))
		}
	}

	if len(errs) > 0 {
		return OrganizationPolicy{}, fmt.Errorf("%w: %v", ErrInvalidPolicySetting, errors.Join(errs...))
	}
	return p, nil
}

// ValidateSetting checks a single key/value pair before it is stored
func ValidateSetting(key, value string) error {
	known := false
	for _, k := range KnownSettings {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownPolicySetting, key)
	}
	_, err := PolicyFromSettings(0, map[string]string{key: value})
	return err
}

// ParseBranchList parses a comma-separated list of branch ids.
// Tokens are trimmed, empty tokens are skipped, duplicates collapse.
func ParseBranchList(value string) ([]int64, error) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)

	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid branch id %q", token)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// FormatBranchList is the inverse of ParseBranchList
func FormatBranchList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func parseMonths(value string) (int, error) {
	months, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if months < 0 || months > MaxAdvanceMonths {
		return 0, fmt.Errorf("must be in 0..%d", MaxAdvanceMonths)
	}
	return months, nil
}

func parseTolerance(value string) (float64, error) {
	tolerance, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if tolerance <= 0 || tolerance > MaxOdometerTolerance {
		return 0, fmt.Errorf("must be in (0, %.0f]", MaxOdometerTolerance)
	}
	return tolerance, nil
}
