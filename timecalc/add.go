package timecalc

import "math"

const (
	minutesPerHour = 60
	hoursPerPeriod = 12
	// maxDurationHours keeps hour arithmetic clear of int overflow.
	maxDurationHours = math.MaxInt32
)

// AddTime adds duration ("H:MM") to start ("H:MM AM|PM") and formats the
// result. weekday is optional: pass "" to omit the weekday from the output.
//
// Validation runs in full before any arithmetic, so a failed call never
// produces partial output.
//
// Example:
//
//	AddTime("2:59 AM", "24:00", "saturday") // "2:59 AM, Sunday (next day)"
func AddTime(start, duration, weekday string) (string, error) {
	day, err := ParseWeekday(weekday)
	if err != nil {
		return "", err
	}
	t, err := ParseTimeOfDay(start)
	if err != nil {
		return "", err
	}
	d, err := ParseDuration(duration)
	if err != nil {
		return "", err
	}
	r, err := Add(t, d, day)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Add is the typed form of AddTime.
//
// Algorithm:
//  1. h = start.Hour mod 12, so 12:xx sits at the beginning of its period.
//  2. hour = h + d.Hours + (start.Minute + d.Minutes) div 60,
//     minute = (start.Minute + d.Minutes) mod 60.
//  3. periods = hour div 12; hour = hour mod 12, with 0 shown as 12.
//  4. The meridiem flips when periods is odd.
//  5. daysLater = periods div 2 for an AM start, (periods+1) div 2 for PM,
//     since a PM start reaches midnight one period sooner.
//  6. The weekday, if any, advances by daysLater.
//
// Complexity: O(1).
func Add(start TimeOfDay, d Duration, day Weekday) (Result, error) {
	if err := start.Validate(); err != nil {
		return Result{}, err
	}
	if err := d.Validate(); err != nil {
		return Result{}, err
	}
	if day < NoWeekday || day > Sunday {
		return Result{}, ErrUnknownWeekday
	}

	var (
		minutes = start.Minute + d.Minutes
		hour    = start.Hour%hoursPerPeriod + d.Hours + minutes/minutesPerHour
		periods = hour / hoursPerPeriod
	)
	minutes %= minutesPerHour
	hour %= hoursPerPeriod
	if hour == 0 {
		hour = hoursPerPeriod
	}

	mer := start.Meridiem
	if periods%2 == 1 {
		mer = mer.Flip()
	}

	var daysLater int
	if start.Meridiem == AM {
		daysLater = periods / 2
	} else {
		daysLater = (periods + 1) / 2
	}

	return Result{
		Time:      TimeOfDay{Hour: hour, Minute: minutes, Meridiem: mer},
		Weekday:   day.AddDays(daysLater),
		DaysLater: daysLater,
	}, nil
}
