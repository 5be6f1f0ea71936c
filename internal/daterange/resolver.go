package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Period names a relative time period selector
type Period int

const (
	Today Period = iota
	Yesterday
	ThisWeek
	ThisMonth
	ThisQuarter
	ThisYear
	LastWeek
	LastMonth
	LastQuarter
	LastYear
)

var periodNames = [...]string{
	Today:       "today",
	Yesterday:   "yesterday",
	ThisWeek:    "thisweek",
	ThisMonth:   "thismonth",
	ThisQuarter: "thisquarter",
	ThisYear:    "thisyear",
	LastWeek:    "lastweek",
	LastMonth:   "lastmonth",
	LastQuarter: "lastquarter",
	LastYear:    "lastyear",
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// Periods returns every period in priority order
func Periods() []Period {
	out := make([]Period, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.period)
	}
	return out
}

// ParsePeriod maps a period name such as "thisweek" to its Period
func ParsePeriod(name string) (Period, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range periodNames {
		if n == key {
			return Period(i), nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", name)
}

// Selection holds the period flags. At most one is expected to be set; when several are,
// the first in priority order wins.
type Selection struct {
	Today       bool
	Yesterday   bool
	ThisWeek    bool
	ThisMonth   bool
	ThisQuarter bool
	ThisYear    bool
	LastWeek    bool
	LastMonth   bool
	LastQuarter bool
	LastYear    bool
}

// With returns a copy of s with the flag for p set
func (s Selection) With(p Period) Selection {
	switch p {
	case Today:
		s.Today = true
	case Yesterday:
		s.Yesterday = true
	case ThisWeek:
		s.ThisWeek = true
	case ThisMonth:
		s.ThisMonth = true
	case ThisQuarter:
		s.ThisQuarter = true
	case ThisYear:
		s.ThisYear = true
	case LastWeek:
		s.LastWeek = true
	case LastMonth:
		s.LastMonth = true
	case LastQuarter:
		s.LastQuarter = true
	case LastYear:
		s.LastYear = true
	}
	return s
}

// Active returns the winning period, if any flag is set
func (s Selection) Active() (Period, bool) {
	for _, r := range rules {
		if r.selected(s) {
			return r.period, true
		}
	}
	return 0, false
}

type rule struct {
	period   Period
	selected func(Selection) bool
	resolve  func(today time.Time) Interval
}

// rules is evaluated top to bottom; the order is the flag priority.
var rules = []rule{
	{Today, func(s Selection) bool { return s.Today }, DayRange},
	{Yesterday, func(s Selection) bool { return s.Yesterday }, func(t time.Time) Interval {
		return DayRange(t.AddDate(0, 0, -1))
	}},
	{ThisWeek, func(s Selection) bool { return s.ThisWeek }, WeekRange},
	{ThisMonth, func(s Selection) bool { return s.ThisMonth }, MonthRange},
	{ThisQuarter, func(s Selection) bool { return s.ThisQuarter }, QuarterRange},
	{ThisYear, func(s Selection) bool { return s.ThisYear }, YearRange},
	{LastWeek, func(s Selection) bool { return s.LastWeek }, func(t time.Time) Interval {
		return WeekRange(t.AddDate(0, 0, -7))
	}},
	{LastMonth, func(s Selection) bool { return s.LastMonth }, func(t time.Time) Interval {
		return MonthRange(subtractMonths(t, 1))
	}},
	// three months back, then that date's quarter; not a quarter index decrement
	{LastQuarter, func(s Selection) bool { return s.LastQuarter }, func(t time.Time) Interval {
		return QuarterRange(subtractMonths(t, 3))
	}},
	{LastYear, func(s Selection) bool { return s.LastYear }, func(t time.Time) Interval {
		return YearRange(subtractMonths(t, 12))
	}},
}

// Resolver turns period selections into concrete intervals
type Resolver struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewResolver creates a resolver using the wall clock
func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Today returns the current calendar date
func (r *Resolver) Today() time.Time {
	if r == nil || r.Now == nil {
		return Day(time.Now())
	}
	return Day(r.Now())
}

// Resolve returns the interval for sel. Any set flag overrides from and to.
// With no flag set, from and to are used verbatim.
func (r *Resolver) Resolve(from, to time.Time, sel Selection) Interval {
	for _, rl := range rules {
		if rl.selected(sel) {
			return rl.resolve(r.Today())
		}
	}
	return NewInterval(from, to)
}

// ResolvePeriod returns the interval for a single period
func (r *Resolver) ResolvePeriod(p Period) Interval {
	for _, rl := range rules {
		if rl.period == p {
			return rl.resolve(r.Today())
		}
	}
	return DayRange(r.Today())
}
