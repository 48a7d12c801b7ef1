// Package seasons maps calendar dates to meteorological-ish seasons for
// either hemisphere.
package seasons

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dayly/internal/constants"
)

// Season is an inclusive month/day range. A range whose start month is after
// its end month wraps past the end of the year.
type Season struct {
	Name       string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
	Color      string
}

func (s Season) wraps() bool {
	return s.StartMonth > s.EndMonth
}

// Contains reports whether the month/day falls inside the season.
func (s Season) Contains(month time.Month, day int) bool {
	if s.wraps() {
		if month < s.StartMonth && month > s.EndMonth {
			return false
		}
		if month == s.StartMonth && day < s.StartDay {
			return false
		}
		if month == s.EndMonth && day > s.EndDay {
			return false
		}
		return true
	}

	switch {
	case month > s.StartMonth && month < s.EndMonth:
		return true
	case month == s.StartMonth && day >= s.StartDay:
		return true
	case month == s.EndMonth && day <= s.EndDay:
		return true
	}
	return false
}

// Range formats the season's span, e.g. "February 20 - May 20".
func (s Season) Range() string {
	return fmt.Sprintf("%s %d - %s %d", s.StartMonth, s.StartDay, s.EndMonth, s.EndDay)
}

const (
	colorSpring = "#4ade80"
	colorSummer = "#fbbf24"
	colorAutumn = "#f97316"
	colorWinter = "#60a5fa"
)

var northern = []Season{
	{"Spring", time.February, 20, time.May, 20, colorSpring},
	{"Summer", time.May, 21, time.August, 22, colorSummer},
	{"Autumn", time.August, 23, time.November, 21, colorAutumn},
	{"Winter", time.November, 22, time.January, 19, colorWinter},
}

var southern = []Season{
	{"Autumn", time.February, 20, time.May, 20, colorAutumn},
	{"Winter", time.May, 21, time.August, 22, colorWinter},
	{"Spring", time.August, 23, time.November, 21, colorSpring},
	{"Summer", time.November, 22, time.January, 19, colorSummer},
}

// ParseHemisphere accepts "northern"/"southern" (or "n"/"s"), case-insensitively.
func ParseHemisphere(s string) (constants.Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "north", string(constants.HemisphereNorthern):
		return constants.HemisphereNorthern, nil
	case "s", "south", string(constants.HemisphereSouthern):
		return constants.HemisphereSouthern, nil
	}
	return "", fmt.Errorf("invalid hemisphere %q (expected northern or southern)", s)
}

// Table returns the seasons for a hemisphere. Unknown values get the northern table.
func Table(h constants.Hemisphere) []Season {
	if h == constants.HemisphereSouthern {
		return southern
	}
	return northern
}

// Current returns the season containing t's calendar date. Dates not covered
// by the table (Jan 20 - Feb 19) fall back to the table's first season.
func Current(t time.Time, h constants.Hemisphere) Season {
	table := Table(h)
	for _, s := range table {
		if s.Contains(t.Month(), t.Day()) {
			return s
		}
	}
	return table[0]
}
