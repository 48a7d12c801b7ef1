package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/dayly/internal/constants"
)

const secondsPerDay = 24 * 60 * 60

// Day identifies a single local calendar day. The zero value means "no day".
//
// Days compare with == and can be used as map keys. Arithmetic is done on UTC
// midnights so daylight-saving shifts in the caller's timezone never move a day.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the Day for the given date, normalizing out-of-range values
// the same way time.Date does (e.g. March 0 is the last day of February).
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DayOf(t), nil
}

// Today returns the calendar day of now.
func Today(now time.Time) Day {
	return DayOf(now)
}

// Yesterday returns the calendar day before now.
func Yesterday(now time.Time) Day {
	return DayOf(now).AddDays(-1)
}

func (d Day) Year() int { return d.year }

func (d Day) Month() time.Month { return d.month }

func (d Day) DayOfMonth() int { return d.day }

func (d Day) IsZero() bool { return d == Day{} }

func (d Day) After(o Day) bool { return d.utc().After(o.utc()) }

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	if d.IsZero() {
		return d
	}
	return NewDay(d.year, d.month, d.day+n)
}

// Time returns local midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.utc().Format(constants.DateFormat)
}

func (d Day) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns b - a in whole days. It is computed from the canonical
// day values, so DaysBetween(a, a) == 0 and DaysBetween(a, b) == -DaysBetween(b, a).
func DaysBetween(a, b Day) int {
	return int((b.utc().Unix() - a.utc().Unix()) / secondsPerDay)
}

// MarshalText implements encoding.TextMarshaler (used for map keys).
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the zero Day as null.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "" or a YYYY-MM-DD string. Timestamps carrying a
// time component (e.g. "2025-01-02T00:00:00.000Z") are truncated to their date.
func (d *Day) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Day{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid day: %w", err)
	}
	if len(s) > len(constants.DateFormat) {
		s = s[:len(constants.DateFormat)]
	}
	return d.UnmarshalText([]byte(s))
}
