package timecalc

import "errors"

// Sentinel errors for timecalc operations. Use errors.Is to branch on them;
// the returned error wraps the sentinel together with the offending input.
var (
	// ErrMalformedStartFormat indicates the start time is not "H:MM AM|PM".
	ErrMalformedStartFormat = errors.New("timecalc: start must be in the format 'H:MM AM|PM'")
	// ErrStartHourOutOfRange indicates a start hour outside [1,12].
	ErrStartHourOutOfRange = errors.New("timecalc: start hour must be between 1 and 12")
	// ErrStartMinuteOutOfRange indicates a start minute outside [0,59].
	ErrStartMinuteOutOfRange = errors.New("timecalc: start minute must be between 0 and 59")
	// ErrInvalidMeridiem indicates a start suffix other than AM or PM.
	ErrInvalidMeridiem = errors.New("timecalc: start must end with AM or PM")
	// ErrUnknownWeekday indicates a weekday that is not one of Monday..Sunday.
	ErrUnknownWeekday = errors.New("timecalc: unknown day of the week")
	// ErrMalformedDurationFormat indicates the duration is not "H...:MM".
	ErrMalformedDurationFormat = errors.New("timecalc: duration must be in the format 'H:MM'")
	// ErrInvalidDurationMinutes indicates duration minutes outside [0,59].
	ErrInvalidDurationMinutes = errors.New("timecalc: duration minutes must be between 0 and 59")
	// ErrNegativeDurationHours indicates duration hours below zero.
	ErrNegativeDurationHours = errors.New("timecalc: duration hours must not be negative")
)
