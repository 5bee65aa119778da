package timecalc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// startPattern captures hour, minute and meridiem of "H:MM AM" / "HH:MM PM".
	startPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (\S+)$`)
	// durationPattern captures signed hours and minutes so that range
	// violations surface as their own errors rather than as format errors.
	durationPattern = regexp.MustCompile(`^(-?\d+):(-?\d+)$`)
)

// ParseTimeOfDay parses "H:MM AM" or "HH:MM PM" and validates the ranges.
//
// Errors: ErrMalformedStartFormat, ErrStartHourOutOfRange,
// ErrStartMinuteOutOfRange, ErrInvalidMeridiem.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := startPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedStartFormat, s)
	}
	// Both fields are at most two digits, Atoi cannot fail here.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	var mer Meridiem
	switch m[3] {
	case "AM":
		mer = AM
	case "PM":
		mer = PM
	}
	t := TimeOfDay{Hour: hour, Minute: minute, Meridiem: mer}
	if err := t.Validate(); err != nil {
		if errors.Is(err, ErrInvalidMeridiem) {
			return TimeOfDay{}, fmt.Errorf("%w: got %q", ErrInvalidMeridiem, m[3])
		}
		return TimeOfDay{}, err
	}
	return t, nil
}

// ParseDuration parses "H:MM" where H may have any number of digits.
//
// Errors: ErrMalformedDurationFormat, ErrNegativeDurationHours,
// ErrInvalidDurationMinutes.
func ParseDuration(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrMalformedDurationFormat, s)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q: %v", ErrMalformedDurationFormat, s, err)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q: %v", ErrMalformedDurationFormat, s, err)
	}
	d := Duration{Hours: hours, Minutes: minutes}
	if err = d.Validate(); err != nil {
		return Duration{}, err
	}
	return d, nil
}
