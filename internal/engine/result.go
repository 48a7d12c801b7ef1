package engine

import (
	"errors"

	"github.com/julianstephens/dayly/internal/calendar"
)

// Outcome classifies what a check-in did. Callers branch on it to pick feedback.
type Outcome string

const (
	OutcomeFirst                Outcome = "first"
	OutcomeConsecutive          Outcome = "consecutive"
	OutcomeReset                Outcome = "reset"
	OutcomeAlreadyCheckedIn     Outcome = "already_checked_in"
	OutcomeAlreadyRecordedToday Outcome = "already_recorded_today"
	OutcomeNoGoalDefined        Outcome = "no_goal_defined"
)

var (
	ErrInvalidGoalTitle    = errors.New("goal title must not be empty")
	ErrInvalidGoalDuration = errors.New("goal duration must be at least one day")
)

// StreakResult describes the effect of a streak check-in.
type StreakResult struct {
	Success       bool         `json:"success"`
	Outcome       Outcome      `json:"outcome"`
	Count         int          `json:"count"`
	LongestStreak int          `json:"longest_streak"`
	DaysMissed    int          `json:"days_missed"` // only for OutcomeReset; negative after clock skew
	Day           calendar.Day `json:"day"`
}

// GoalResult describes the effect of a goal progress check-in.
type GoalResult struct {
	Success           bool         `json:"success"`
	Outcome           Outcome      `json:"outcome"`
	ProgressDays      int          `json:"progress_days"`
	TotalDays         int          `json:"total_days"`
	GoalStreak        int          `json:"goal_streak"`
	LongestGoalStreak int          `json:"longest_goal_streak"`
	Completed         bool         `json:"completed"`
	DaysMissed        int          `json:"days_missed"`
	Day               calendar.Day `json:"day"`
}

// Missed is DaysMissed floored at zero, for messages.
func (r StreakResult) Missed() int { return max(r.DaysMissed, 0) }

// Missed is DaysMissed floored at zero, for messages.
func (r GoalResult) Missed() int { return max(r.DaysMissed, 0) }
