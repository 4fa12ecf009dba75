package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyFromSettings(t *testing.T) {
	settings := map[string]string{
		SettingAdvanceBookingMonths:       "3",
		SettingExcludeWeekends:            "true",
		SettingExcludeHolidays:            "false",
		SettingTimeWindowRestriction:      "true",
		SettingTimeWindowExcludedBranches: " 12, 7 ,,12",
		SettingManualExtensionAllowed:     "true",
		SettingOdometerTolerance:          "0.15",
		"legacy_positional_flag":          "whatever",
	}

	p, err := PolicyFromSettings(5, settings)
	require.NoError(t, err)

	assert.Equal(t, int64(5), p.OrganizationID)
	assert.Equal(t, 3, p.MaxAdvanceMonths)
	assert.True(t, p.ExcludeWeekends)
	assert.False(t, p.ExcludeHolidays)
	assert.True(t, p.ManualExtensionAllowed)
	assert.False(t, p.BookingRequiresApproval)
	assert.Equal(t, 0.15, p.OdometerTolerance)
	assert.Equal(t, TimeWindowScope{Kind: ScopeExcludedBranches, ExcludedBranchIDs: []int64{7, 12}}, p.TimeWindowScope)
}

func TestPolicyFromSettings_Defaults(t *testing.T) {
	p, err := PolicyFromSettings(5, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(5), p)
}

func TestPolicyFromSettings_InvalidValue(t *testing.T) {
	_, err := PolicyFromSettings(5, map[string]string{
		SettingExcludeWeekends:            "sometimes",
		SettingTimeWindowExcludedBranches: "12,abc",
	})

	require.ErrorIs(t, err, ErrInvalidPolicySetting)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), SettingExcludeWeekends)
	assert.Contains(t, err.Error(), SettingTimeWindowExcludedBranches)
}

func TestTimeWindowScope_Excludes(t *testing.T) {
	scope := TimeWindowScope{Kind: ScopeExcludedBranches, ExcludedBranchIDs: []int64{12}}

	assert.True(t, scope.Excludes(12))
	assert.False(t, scope.Excludes(1), "prefix of 12 must not match")
	assert.False(t, scope.Excludes(2), "suffix of 12 must not match")
	assert.False(t, TimeWindowScope{Kind: ScopeAllBranches}.Excludes(12))
}

func TestParseBranchList(t *testing.T) {
	ids, err := ParseBranchList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = ParseBranchList("3, 1 ,2")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, "1,2,3", FormatBranchList(ids))

	_, err = ParseBranchList("1,-2")
	assert.Error(t, err)
}

func TestOrganizationPolicy_MaxBookingDate(t *testing.T) {
	now := at(2026, time.January, 31, 15, 30)

	_, limited := DefaultPolicy(1).MaxBookingDate(now)
	assert.False(t, limited)

	maxDate, limited := OrganizationPolicy{MaxAdvanceMonths: 2}.MaxBookingDate(now)
	require.True(t, limited)
	assert.Equal(t, date(2026, time.March, 31), maxDate)
}

func TestValidateSetting(t *testing.T) {
	assert.NoError(t, ValidateSetting(SettingExcludeHolidays, "true"))
	assert.ErrorIs(t, ValidateSetting("unknown_key", "1"), ErrUnknownPolicySetting)
	assert.ErrorIs(t, ValidateSetting(SettingOdometerTolerance, "0"), ErrInvalidPolicySetting)
	assert.ErrorIs(t, ValidateSetting(SettingAdvanceBookingMonths, "99"), ErrInvalidPolicySetting)
}
