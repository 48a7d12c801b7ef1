package models

import (
	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/constants"
)

// GoalRecord is the persisted user-defined goal.
type GoalRecord struct {
	Title             string                `json:"title"` // empty means no goal
	StartDate         calendar.Day          `json:"startDate"`
	ProgressDays      int                   `json:"progressDays"`
	TotalDays         int                   `json:"totalDays"`
	CheckIns          map[calendar.Day]bool `json:"checkIns"`
	Completed         bool                  `json:"completed"`
	LastProgressDate  calendar.Day          `json:"lastProgressDate"`
	GoalStreak        int                   `json:"goalStreak"`
	LongestGoalStreak int                   `json:"longestGoalStreak"`
}

// DefaultGoal returns the "no goal" record used on first run.
func DefaultGoal() GoalRecord {
	return GoalRecord{
		TotalDays: constants.GoalDefaultDays,
		CheckIns:  make(map[calendar.Day]bool),
	}
}

// Defined reports whether the record holds an active goal.
func (g GoalRecord) Defined() bool {
	return g.Title != "" && !g.StartDate.IsZero()
}

// Recorded reports whether progress is recorded for day.
func (g GoalRecord) Recorded(day calendar.Day) bool {
	return g.CheckIns[day]
}

// PercentComplete returns progress as a percentage, capped at 100.
func (g GoalRecord) PercentComplete() float64 {
	if g.TotalDays <= 0 {
		return 0
	}
	pct := float64(g.ProgressDays) / float64(g.TotalDays) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysRemaining returns the days still needed, never negative.
func (g GoalRecord) DaysRemaining() int {
	if g.ProgressDays >= g.TotalDays {
		return 0
	}
	return g.TotalDays - g.ProgressDays
}

// TargetDate is the day the goal would complete with no misses.
func (g GoalRecord) TargetDate() calendar.Day {
	return g.StartDate.AddDays(g.TotalDays)
}

// Clone returns a deep copy of the record.
func (g GoalRecord) Clone() GoalRecord {
	out := g
	out.CheckIns = make(map[calendar.Day]bool, len(g.CheckIns))
	for day, ok := range g.CheckIns {
		out.CheckIns[day] = ok
	}
	return out
}

// Normalize repairs a record decoded from storage.
func (g *GoalRecord) Normalize() {
	if g.CheckIns == nil {
		g.CheckIns = make(map[calendar.Day]bool)
	}
	if g.TotalDays <= 0 {
		g.TotalDays = constants.GoalDefaultDays
	}
	if g.ProgressDays < 0 {
		g.ProgressDays = 0
	}
	if g.LongestGoalStreak < g.GoalStreak {
		g.LongestGoalStreak = g.GoalStreak
	}
	g.Completed = g.ProgressDays >= g.TotalDays
}
