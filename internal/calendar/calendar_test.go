package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.leap, IsLeapYear(tt.year), "IsLeapYear(%d)", tt.year)
		want := 365
		if tt.leap {
			want = 366
		}
		assert.Equal(t, want, DaysInYear(tt.year), "DaysInYear(%d)", tt.year)
	}
}

func TestYearProgressBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		dayOfYear int
		total     int
	}{
		{"jan 1", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 1, 365},
		{"jan 1 late evening", time.Date(2025, time.January, 1, 23, 59, 59, 0, time.UTC), 1, 365},
		{"dec 31 leap year", time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC), 366, 366},
		{"dec 31 common year", time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC), 365, 365},
		{"leap day", time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC), 60, 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := YearProgressFor(tt.at)
			assert.Equal(t, tt.dayOfYear, p.DayOfYear)
			assert.Equal(t, tt.total, p.TotalDays)
			assert.Equal(t, p.TotalDays, p.DayOfYear+p.DaysRemaining)
			assert.InDelta(t, float64(tt.dayOfYear)/float64(tt.total)*100, p.PercentComplete, 1e-9)
		})
	}

	full := YearProgressFor(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 100.0, full.PercentComplete, 1e-9)
	assert.Equal(t, 0, full.DaysRemaining)
}

func TestYearProgressInvariantAcrossYear(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		start := time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC)
		for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
			p := YearProgressFor(d)
			require.Equal(t, p.TotalDays, p.DayOfYear+p.DaysRemaining, "date %s", d.Format("2006-01-02"))
			require.Equal(t, d.YearDay(), p.DayOfYear, "date %s", d.Format("2006-01-02"))
		}
	}
}

func TestDayOfYearAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 2025-03-09 is a 23-hour day and 2025-11-02 a 25-hour day in New York.
	tests := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2025, time.March, 9, 0, 30, 0, 0, loc), 68},
		{time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), 69},
		{time.Date(2025, time.November, 2, 23, 59, 0, 0, loc), 306},
		{time.Date(2025, time.November, 3, 0, 0, 0, 0, loc), 307},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayOfYear(tt.at), "DayOfYear(%s)", tt.at)
	}
}

func TestMonthProgress(t *testing.T) {
	tests := []struct {
		name  string
		at    time.Time
		day   int
		total int
	}{
		{"feb leap", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), 29, 29},
		{"feb common", time.Date(2023, time.February, 14, 0, 0, 0, 0, time.UTC), 14, 28},
		{"april", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 1, 30},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 31, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MonthProgressFor(tt.at)
			assert.Equal(t, tt.day, p.DayOfMonth)
			assert.Equal(t, tt.total, p.TotalDays)
			assert.Equal(t, p.TotalDays, p.DayOfMonth+p.DaysRemaining)
			assert.Equal(t, tt.at.Month().String(), p.MonthName)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := NewDay(2024, time.December, 30)
	b := NewDay(2025, time.January, 2)

	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 366, DaysBetween(NewDay(2024, time.January, 1), NewDay(2025, time.January, 1)))
	assert.Equal(t, 1, DaysBetween(NewDay(2024, time.February, 28), NewDay(2024, time.February, 29)))
}

func TestTodayAndYesterday(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, NewDay(2025, time.March, 1), Today(now))
	assert.Equal(t, NewDay(2025, time.February, 28), Yesterday(now))
	assert.Equal(t, 1, DaysBetween(Yesterday(now), Today(now)))
}

func TestDayOfUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2025, time.June, 30, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-30", DayOf(instant).String())
	assert.Equal(t, "2025-07-01", DayOf(instant.In(tokyo)).String())
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-10-16")
	require.NoError(t, err)
	assert.Equal(t, NewDay(2025, time.October, 16), d)

	_, err = ParseDay("16/10/2025")
	assert.Error(t, err)
}

func TestDayJSON(t *testing.T) {
	type record struct {
		Last     Day         `json:"last"`
		CheckIns map[Day]int `json:"checkIns"`
	}

	in := record{
		CheckIns: map[Day]int{NewDay(2025, time.January, 5): 1},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"last":null,"checkIns":{"2025-01-05":1}}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal([]byte(`{"last":"2025-01-05","checkIns":{"2025-01-05":1}}`), &out))
	assert.Equal(t, NewDay(2025, time.January, 5), out.Last)
	assert.Equal(t, 1, out.CheckIns[out.Last])

	require.NoError(t, json.Unmarshal([]byte(`{"last":"2025-01-05T00:00:00.000Z"}`), &out))
	assert.Equal(t, NewDay(2025, time.January, 5), out.Last)

	assert.Error(t, json.Unmarshal([]byte(`{"last":"yesterday"}`), &out))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, time.May, 4, 9, 0, 0, 0, time.UTC)
	c := FixedClock(at)
	assert.True(t, c.Now().Equal(at))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}
