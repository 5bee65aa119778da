package timecalc_test

import (
	"fmt"

	"github.com/katalvlaran/scicalc/timecalc"
)

// ExampleAddTime shows rollover across midnight with and without a weekday.
func ExampleAddTime() {
	for _, in := range [][3]string{
		{"3:30 PM", "2:12", ""},
		{"11:59 PM", "24:05", "Wednesday"},
		{"8:16 PM", "466:02", "tuesday"},
	} {
		s, err := timecalc.AddTime(in[0], in[1], in[2])
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(s)
	}

	// Output:
	// 5:42 PM
	// 12:04 AM, Friday (2 days later)
	// 6:18 AM, Monday (20 days later)
}

// ExampleAdd shows the typed form and the fields of Result.
func ExampleAdd() {
	r, err := timecalc.Add(
		timecalc.TimeOfDay{Hour: 2, Minute: 59, Meridiem: timecalc.AM},
		timecalc.Duration{Hours: 24},
		timecalc.Saturday,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.Time, r.Weekday, r.DaysLater)

	// Output:
	// 2:59 AM Sunday 1
}
