package daterange

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format used in filenames and reports
const DateLayout = "2006-01-02"

// Interval is an inclusive range of calendar dates
type Interval struct {
	Start time.Time
	End   time.Time
}

// Day normalizes t to midnight local time
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// NewInterval builds an Interval from two dates, dropping any time-of-day component.
// The bounds are taken verbatim; an inverted pair yields an interval that contains nothing.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: Day(start), End: Day(end)}
}

// DayRange returns the single-day interval for date
func DayRange(date time.Time) Interval {
	d := Day(date)
	return Interval{Start: d, End: d}
}

// WeekRange returns the interval for the week containing date (Mon-Sun)
func WeekRange(date time.Time) Interval {
	weekday := date.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	monday := Day(date).AddDate(0, 0, -int(weekday-time.Monday))
	return Interval{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// MonthRange returns the interval for the month containing date
func MonthRange(date time.Time) Interval {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
	return Interval{Start: start, End: start.AddDate(0, 1, -1)}
}

// QuarterRange returns the interval for the calendar quarter containing date
func QuarterRange(date time.Time) Interval {
	first := time.Month((int(date.Month())-1)/3*3 + 1)
	start := time.Date(date.Year(), first, 1, 0, 0, 0, 0, time.Local)
	return Interval{Start: start, End: start.AddDate(0, 3, -1)}
}

// YearRange returns the interval for the year containing date
func YearRange(date time.Time) Interval {
	start := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	return Interval{Start: start, End: time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, time.Local)}
}

// Contains reports whether date falls inside the interval, inclusive at both ends
func (iv Interval) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(Day(iv.Start)) && !d.After(Day(iv.End))
}

// Days returns the number of calendar days covered, or 0 for an inverted interval
func (iv Interval) Days() int {
	s, e := Day(iv.Start), Day(iv.End)
	if e.Before(s) {
		return 0
	}
	n := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s -> %s", iv.Start.Format(DateLayout), iv.End.Format(DateLayout))
}

// subtractMonths moves date back n months, clamping the day to the target month's length
// (Mar 31 minus one month is the last day of February, not Mar 3).
func subtractMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	target := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, time.Local)
	last := target.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, time.Local)
}
