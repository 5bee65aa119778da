// Package timecalc adds a duration to a 12-hour wall-clock time and reports
// the resulting time, the optional weekday and how many days later it falls.
//
// What:
//
//   - AddTime works on strings: "3:30 PM" + "2:12" → "5:42 PM".
//   - Add works on typed values (TimeOfDay, Duration, Weekday) and returns a Result.
//   - Hours wrap at 12, the meridiem flips once per odd number of 12-hour periods,
//     and whole days are counted from midnight crossings.
//   - A weekday, when given, is matched case-insensitively and advanced by the
//     number of days passed.
//
// Output format:
//
//	"{hour}:{minute:02} {AM|PM}[, {Weekday}][ (next day)| ({n} days later)]"
//
// Usage:
//
//	s, err := timecalc.AddTime("11:59 PM", "24:05", "wednesday")
//	// s == "12:04 AM, Friday (2 days later)"
//
// Complexity:
//
//   - AddTime / Add: O(1) time, O(1) memory.
//
// Errors (all returned before any arithmetic happens):
//
//   - ErrUnknownWeekday: weekday does not name one of Monday..Sunday.
//   - ErrMalformedStartFormat: start does not match "H:MM AM" / "HH:MM PM".
//   - ErrStartHourOutOfRange: start hour outside [1,12].
//   - ErrStartMinuteOutOfRange: start minute outside [0,59].
//   - ErrInvalidMeridiem: start suffix is neither AM nor PM.
//   - ErrMalformedDurationFormat: duration does not match "H...:MM".
//   - ErrNegativeDurationHours: duration hours below zero.
//   - ErrInvalidDurationMinutes: duration minutes outside [0,59].
package timecalc
