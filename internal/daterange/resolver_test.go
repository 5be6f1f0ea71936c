package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func fixedResolver(now time.Time) *Resolver {
	return &Resolver{Now: func() time.Time { return now }}
}

func TestResolve_Periods(t *testing.T) {
	// May 15, 2024 is a Wednesday
	r := fixedResolver(time.Date(2024, 5, 15, 17, 42, 0, 0, time.Local))

	tests := []struct {
		period Period
		start  time.Time
		end    time.Time
	}{
		{Today, date(2024, 5, 15), date(2024, 5, 15)},
		{Yesterday, date(2024, 5, 14), date(2024, 5, 14)},
		{ThisWeek, date(2024, 5, 13), date(2024, 5, 19)},
		{ThisMonth, date(2024, 5, 1), date(2024, 5, 31)},
		{ThisQuarter, date(2024, 4, 1), date(2024, 6, 30)},
		{ThisYear, date(2024, 1, 1), date(2024, 12, 31)},
		{LastWeek, date(2024, 5, 6), date(2024, 5, 12)},
		{LastMonth, date(2024, 4, 1), date(2024, 4, 30)},
		{LastQuarter, date(2024, 1, 1), date(2024, 3, 31)},
		{LastYear, date(2023, 1, 1), date(2023, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			iv := r.Resolve(date(2000, 1, 1), date(2000, 1, 2), Selection{}.With(tt.period))
			assert.Equal(t, tt.start, iv.Start)
			assert.Equal(t, tt.end, iv.End)
			assert.False(t, iv.End.Before(iv.Start))
		})
	}
}

func TestResolve_ExplicitDatesUsedVerbatim(t *testing.T) {
	r := fixedResolver(date(2024, 5, 15))

	iv := r.Resolve(time.Date(2024, 1, 3, 9, 30, 0, 0, time.Local), date(2024, 2, 4), Selection{})

	assert.Equal(t, date(2024, 1, 3), iv.Start)
	assert.Equal(t, date(2024, 2, 4), iv.End)
}

func TestResolve_FlagPriority(t *testing.T) {
	r := fixedResolver(date(2024, 5, 15))
	periods := Periods()
	require.Len(t, periods, 10)

	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			both := Selection{}.With(periods[i]).With(periods[j])
			alone := Selection{}.With(periods[i])
			assert.Equal(t,
				r.Resolve(time.Time{}, time.Time{}, alone),
				r.Resolve(time.Time{}, time.Time{}, both),
				"%s + %s", periods[i], periods[j])
		}
	}
}

func TestPeriods_PriorityOrder(t *testing.T) {
	want := []string{
		"today", "yesterday", "thisweek", "thismonth", "thisquarter",
		"thisyear", "lastweek", "lastmonth", "lastquarter", "lastyear",
	}
	var got []string
	for _, p := range Periods() {
		got = append(got, p.String())
	}
	assert.Equal(t, want, got)
}

func TestResolve_Idempotent(t *testing.T) {
	// the clock advances between calls but stays on the same day
	now := time.Date(2024, 8, 30, 10, 0, 0, 0, time.Local)
	r := &Resolver{Now: func() time.Time {
		now = now.Add(time.Second)
		return now
	}}

	for _, p := range Periods() {
		sel := Selection{}.With(p)
		first := r.Resolve(time.Time{}, time.Time{}, sel)
		second := r.Resolve(time.Time{}, time.Time{}, sel)
		assert.Equal(t, first, second, p.String())
	}
}

func TestResolve_ClampsMonthArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		period Period
		start  time.Time
		end    time.Time
	}{
		{"lastmonth from Mar 31", date(2024, 3, 31), LastMonth, date(2024, 2, 1), date(2024, 2, 29)},
		{"lastquarter from Dec 31", date(2024, 12, 31), LastQuarter, date(2024, 7, 1), date(2024, 9, 30)},
		{"lastquarter across year", date(2024, 1, 15), LastQuarter, date(2023, 10, 1), date(2023, 12, 31)},
		{"lastquarter mid-quarter", date(2024, 5, 31), LastQuarter, date(2024, 1, 1), date(2024, 3, 31)},
		{"lastyear from leap day", date(2024, 2, 29), LastYear, date(2023, 1, 1), date(2023, 12, 31)},
		{"lastweek across month", date(2024, 6, 3), LastWeek, date(2024, 5, 27), date(2024, 6, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := fixedResolver(tt.now).ResolvePeriod(tt.period)
			assert.Equal(t, tt.start, iv.Start)
			assert.Equal(t, tt.end, iv.End)
		})
	}
}

func TestWeekRange_Sunday(t *testing.T) {
	// May 19, 2024 is a Sunday
	iv := WeekRange(date(2024, 5, 19))
	assert.Equal(t, time.Monday, iv.Start.Weekday())
	assert.Equal(t, date(2024, 5, 13), iv.Start)
	assert.Equal(t, date(2024, 5, 19), iv.End)
}

func TestSelection_Active(t *testing.T) {
	_, ok := Selection{}.Active()
	assert.False(t, ok)

	p, ok := Selection{LastYear: true, ThisMonth: true}.Active()
	require.True(t, ok)
	assert.Equal(t, ThisMonth, p)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" ThisQuarter ")
	require.NoError(t, err)
	assert.Equal(t, ThisQuarter, p)

	_, err = ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestInterval_Contains(t *testing.T) {
	iv := NewInterval(date(2024, 6, 1), date(2024, 6, 2))

	assert.True(t, iv.Contains(date(2024, 6, 1)))
	assert.True(t, iv.Contains(time.Date(2024, 6, 2, 23, 59, 0, 0, time.Local)))
	assert.False(t, iv.Contains(date(2024, 5, 31)))
	assert.False(t, iv.Contains(date(2024, 6, 3)))
	assert.Equal(t, 2, iv.Days())
	assert.Equal(t, "2024-06-01 -> 2024-06-02", iv.String())
}

func TestInterval_Inverted(t *testing.T) {
	iv := NewInterval(date(2024, 6, 2), date(2024, 6, 1))

	assert.False(t, iv.Contains(date(2024, 6, 1)))
	assert.False(t, iv.Contains(date(2024, 6, 2)))
	assert.Equal(t, 0, iv.Days())
}
