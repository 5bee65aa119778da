package timecalc

import (
	"fmt"
	"strings"
)

// Meridiem is the AM/PM half of a 12-hour clock reading.
// The zero value is not a valid meridiem.
type Meridiem int

const (
	// AM covers 12:00 midnight up to 11:59 in the morning.
	AM Meridiem = iota + 1
	// PM covers 12:00 noon up to 11:59 at night.
	PM
)

// String returns "AM" or "PM", or "Meridiem(n)" for an invalid value.
func (m Meridiem) String() string {
	switch m {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return fmt.Sprintf("Meridiem(%d)", int(m))
	}
}

// Flip returns the opposite meridiem. Invalid values are returned unchanged.
func (m Meridiem) Flip() Meridiem {
	switch m {
	case AM:
		return PM
	case PM:
		return AM
	default:
		return m
	}
}

func (m Meridiem) valid() bool { return m == AM || m == PM }

// Weekday is a day of the week in Monday-first order.
// The zero value NoWeekday means "no weekday given" and suppresses the
// weekday in formatted output.
type Weekday int

const (
	NoWeekday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// daysPerWeek is the length of the weekday cycle.
const daysPerWeek = 7

// weekdayNames is indexed by Weekday; index 0 is the absent weekday.
var weekdayNames = [...]string{
	NoWeekday: "",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String returns the capitalized weekday name, or "" for NoWeekday.
func (d Weekday) String() string {
	if d < NoWeekday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// AddDays advances d by n days (n >= 0), wrapping Sunday → Monday.
// NoWeekday stays NoWeekday.
func (d Weekday) AddDays(n int) Weekday {
	if d == NoWeekday {
		return NoWeekday
	}
	return Weekday((int(d)-1+n%daysPerWeek)%daysPerWeek + 1)
}

// ParseWeekday matches s case-insensitively against Monday..Sunday.
// An empty string yields NoWeekday and no error.
func ParseWeekday(s string) (Weekday, error) {
	if s == "" {
		return NoWeekday, nil
	}
	for d := Monday; d <= Sunday; d++ {
		if strings.EqualFold(weekdayNames[d], s) {
			return d, nil
		}
	}
	return NoWeekday, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// TimeOfDay is a 12-hour clock reading: Hour in [1,12], Minute in [0,59].
type TimeOfDay struct {
	Hour     int
	Minute   int
	Meridiem Meridiem
}

// String formats t as "3:04 PM": the hour is not padded, the minute always has two digits.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Meridiem)
}

// Validate reports the first range violation in t, if any.
func (t TimeOfDay) Validate() error {
	if t.Hour < 1 || t.Hour > 12 {
		return fmt.Errorf("%w: got %d", ErrStartHourOutOfRange, t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: got %d", ErrStartMinuteOutOfRange, t.Minute)
	}
	if !t.Meridiem.valid() {
		return fmt.Errorf("%w: got %s", ErrInvalidMeridiem, t.Meridiem)
	}
	return nil
}

// Duration is an elapsed span of Hours (any non-negative value) and Minutes in [0,59].
type Duration struct {
	Hours   int
	Minutes int
}

// Validate reports the first range violation in d, if any.
func (d Duration) Validate() error {
	if d.Hours < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDurationHours, d.Hours)
	}
	if d.Hours > maxDurationHours {
		return fmt.Errorf("%w: %d hours exceeds %d", ErrMalformedDurationFormat, d.Hours, maxDurationHours)
	}
	if d.Minutes < 0 || d.Minutes >= minutesPerHour {
		return fmt.Errorf("%w: got %d", ErrInvalidDurationMinutes, d.Minutes)
	}
	return nil
}

// Result is the outcome of adding a Duration to a TimeOfDay.
type Result struct {
	Time      TimeOfDay
	Weekday   Weekday // NoWeekday when none was supplied
	DaysLater int
}

// String renders r in the AddTime output format, e.g.
// "12:04 AM, Friday (2 days later)".
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Time.String())
	if r.Weekday != NoWeekday {
		b.WriteString(", ")
		b.WriteString(r.Weekday.String())
	}
	switch {
	case r.DaysLater == 1:
		b.WriteString(" (next day)")
	case r.DaysLater > 1:
		fmt.Fprintf(&b, " (%d days later)", r.DaysLater)
	}
	return b.String()
}
