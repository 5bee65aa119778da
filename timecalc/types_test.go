package timecalc_test

import (
	"testing"

	"github.com/katalvlaran/scicalc/timecalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseWeekday_CaseInsensitive accepts any casing and the empty string.
func TestParseWeekday_CaseInsensitive(t *testing.T) {
	for in, want := range map[string]timecalc.Weekday{
		"":          timecalc.NoWeekday,
		"monday":    timecalc.Monday,
		"SUNDAY":    timecalc.Sunday,
		"wEdNeSdAy": timecalc.Wednesday,
	} {
		got, err := timecalc.ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := timecalc.ParseWeekday("mon")
	assert.ErrorIs(t, err, timecalc.ErrUnknownWeekday)
}

// TestWeekday_AddDays wraps around the week and leaves NoWeekday alone.
func TestWeekday_AddDays(t *testing.T) {
	assert.Equal(t, timecalc.Monday, timecalc.Sunday.AddDays(1))
	assert.Equal(t, timecalc.Saturday, timecalc.Saturday.AddDays(14))
	assert.Equal(t, timecalc.Monday, timecalc.Tuesday.AddDays(20))
	assert.Equal(t, timecalc.NoWeekday, timecalc.NoWeekday.AddDays(3))
	assert.Equal(t, "", timecalc.NoWeekday.String())
	assert.Equal(t, "Thursday", timecalc.Thursday.String())
}

// TestParseTimeOfDay_Valid covers single and double digit hours.
func TestParseTimeOfDay_Valid(t *testing.T) {
	got, err := timecalc.ParseTimeOfDay("9:05 AM")
	require.NoError(t, err)
	assert.Equal(t, timecalc.TimeOfDay{Hour: 9, Minute: 5, Meridiem: timecalc.AM}, got)
	assert.Equal(t, "9:05 AM", got.String())

	got, err = timecalc.ParseTimeOfDay("12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, timecalc.TimeOfDay{Hour: 12, Minute: 0, Meridiem: timecalc.PM}, got)
}

// TestParseDuration_LargeHours allows hour counts spanning many days.
func TestParseDuration_LargeHours(t *testing.T) {
	got, err := timecalc.ParseDuration("466:02")
	require.NoError(t, err)
	assert.Equal(t, timecalc.Duration{Hours: 466, Minutes: 2}, got)

	_, err = timecalc.ParseDuration("99999999999999999999:00")
	assert.ErrorIs(t, err, timecalc.ErrMalformedDurationFormat)
}

// TestMeridiem_Flip swaps AM and PM.
func TestMeridiem_Flip(t *testing.T) {
	assert.Equal(t, timecalc.PM, timecalc.AM.Flip())
	assert.Equal(t, timecalc.AM, timecalc.PM.Flip())
	assert.Equal(t, "Meridiem(0)", timecalc.Meridiem(0).String())
}

// TestResult_String omits empty parts of the suffix.
func TestResult_String(t *testing.T) {
	r := timecalc.Result{
		Time:      timecalc.TimeOfDay{Hour: 6, Minute: 18, Meridiem: timecalc.AM},
		Weekday:   timecalc.NoWeekday,
		DaysLater: 20,
	}
	assert.Equal(t, "6:18 AM (20 days later)", r.String())

	r.DaysLater = 0
	r.Weekday = timecalc.Monday
	assert.Equal(t, "6:18 AM, Monday", r.String())
}
