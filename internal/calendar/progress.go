package calendar

import "time"

// YearProgress describes how far through its year a moment is.
type YearProgress struct {
	Year            int     `json:"year"`
	DayOfYear       int     `json:"day_of_year"`
	TotalDays       int     `json:"total_days"`
	PercentComplete float64 `json:"percent_complete"`
	DaysRemaining   int     `json:"days_remaining"`
}

// MonthProgress describes how far through its month a moment is.
type MonthProgress struct {
	Month           time.Month `json:"month"`
	MonthName       string     `json:"month_name"`
	DayOfMonth      int        `json:"day_of_month"`
	TotalDays       int        `json:"total_days"`
	PercentComplete float64    `json:"percent_complete"`
	DaysRemaining   int        `json:"days_remaining"`
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal day of t within its year.
// It counts whole calendar days since the preceding Dec 31, so a 23- or
// 25-hour DST day never produces an off-by-one.
func DayOfYear(t time.Time) int {
	d := DayOf(t)
	return DaysBetween(NewDay(d.Year()-1, time.December, 31), d)
}

// DaysInMonth returns the number of days in the given month (day 0 of the next month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// YearProgressFor computes year progress for t.
func YearProgressFor(t time.Time) YearProgress {
	year := t.Year()
	day := DayOfYear(t)
	total := DaysInYear(year)
	return YearProgress{
		Year:            year,
		DayOfYear:       day,
		TotalDays:       total,
		PercentComplete: float64(day) / float64(total) * 100,
		DaysRemaining:   total - day,
	}
}

// MonthProgressFor computes month progress for t.
func MonthProgressFor(t time.Time) MonthProgress {
	total := DaysInMonth(t.Year(), t.Month())
	day := t.Day()
	return MonthProgress{
		Month:           t.Month(),
		MonthName:       t.Month().String(),
		DayOfMonth:      day,
		TotalDays:       total,
		PercentComplete: float64(day) / float64(total) * 100,
		DaysRemaining:   total - day,
	}
}
