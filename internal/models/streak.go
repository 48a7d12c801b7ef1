package models

import "github.com/julianstephens/dayly/internal/calendar"

// StreakRecord is the persisted daily check-in streak.
type StreakRecord struct {
	Count         int                  `json:"count"`
	LastCheckIn   calendar.Day         `json:"lastCheckIn"`           // null until the first check-in
	CheckIns      map[calendar.Day]int `json:"checkIns"`              // day -> intensity level, display only
	LongestStreak int                  `json:"longestStreak"`
}

// DefaultStreak returns the record used on first run.
func DefaultStreak() StreakRecord {
	return StreakRecord{CheckIns: make(map[calendar.Day]int)}
}

// CheckedIn reports whether a check-in is recorded for day.
func (r StreakRecord) CheckedIn(day calendar.Day) bool {
	return r.CheckIns[day] > 0
}

// Clone returns a deep copy of the record.
func (r StreakRecord) Clone() StreakRecord {
	out := r
	out.CheckIns = make(map[calendar.Day]int, len(r.CheckIns))
	for day, level := range r.CheckIns {
		out.CheckIns[day] = level
	}
	return out
}

// Normalize repairs a record decoded from storage.
func (r *StreakRecord) Normalize() {
	if r.CheckIns == nil {
		r.CheckIns = make(map[calendar.Day]int)
	}
	if r.Count < 0 {
		r.Count = 0
	}
	if r.LongestStreak < r.Count {
		r.LongestStreak = r.Count
	}
	if !r.LastCheckIn.IsZero() && !r.CheckedIn(r.LastCheckIn) {
		r.CheckIns[r.LastCheckIn] = 1
	}
}
