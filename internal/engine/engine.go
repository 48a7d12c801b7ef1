// Package engine holds the streak and goal transition rules. Every function is
// pure: it takes a record and the current time and returns an updated copy.
package engine

import (
	"errors"
	"time"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/models"
)

// ComputeYearProgress returns year progress for now.
func ComputeYearProgress(now time.Time) calendar.YearProgress {
	return calendar.YearProgressFor(now)
}

// ComputeMonthProgress returns month progress for now.
func ComputeMonthProgress(now time.Time) calendar.MonthProgress {
	return calendar.MonthProgressFor(now)
}

// CheckInStreak records today's check-in.
func CheckInStreak(rec models.StreakRecord, now time.Time) (models.StreakRecord, StreakResult) {
	today := calendar.Today(now)

	if rec.CheckedIn(today) || rec.LastCheckIn == today {
		return rec, StreakResult{
			Outcome:       OutcomeAlreadyCheckedIn,
			Count:         rec.Count,
			LongestStreak: rec.LongestStreak,
			Day:           today,
		}
	}

	next := rec.Clone()
	res := StreakResult{Success: true, Day: today}

	switch {
	case rec.LastCheckIn.IsZero():
		next.Count = 1
		res.Outcome = OutcomeFirst
	case rec.LastCheckIn == calendar.Yesterday(now):
		next.Count = rec.Count + 1
		res.Outcome = OutcomeConsecutive
	default:
		next.Count = 1
		res.Outcome = OutcomeReset
		res.DaysMissed = calendar.DaysBetween(rec.LastCheckIn, today)
	}

	next.CheckIns[today] = 1
	next.LastCheckIn = today
	if next.Count > next.LongestStreak {
		next.LongestStreak = next.Count
	}

	res.Count = next.Count
	res.LongestStreak = next.LongestStreak
	return next, res
}

// CheckInGoal records today's progress toward the active goal. Missing a day
// restarts the goal from zero.
func CheckInGoal(rec models.GoalRecord, now time.Time) (models.GoalRecord, GoalResult) {
	today := calendar.Today(now)
	res := GoalResult{
		ProgressDays:      rec.ProgressDays,
		TotalDays:         rec.TotalDays,
		GoalStreak:        rec.GoalStreak,
		LongestGoalStreak: rec.LongestGoalStreak,
		Completed:         rec.Completed,
		Day:               today,
	}

	if !rec.Defined() {
		res.Outcome = OutcomeNoGoalDefined
		return rec, res
	}
	if rec.Recorded(today) || rec.LastProgressDate == today {
		res.Outcome = OutcomeAlreadyRecordedToday
		return rec, res
	}

	next := rec.Clone()
	res.Success = true

	switch {
	case rec.LastProgressDate.IsZero():
		next.GoalStreak = 1
		res.Outcome = OutcomeFirst
	case rec.LastProgressDate == calendar.Yesterday(now):
		next.GoalStreak = rec.GoalStreak + 1
		res.Outcome = OutcomeConsecutive
	default:
		next.ProgressDays = 0
		next.CheckIns = make(map[calendar.Day]bool)
		next.GoalStreak = 1
		next.Completed = false
		res.Outcome = OutcomeReset
		res.DaysMissed = calendar.DaysBetween(rec.LastProgressDate, today)
	}

	next.CheckIns[today] = true
	next.ProgressDays++
	next.LastProgressDate = today
	if next.GoalStreak > next.LongestGoalStreak {
		next.LongestGoalStreak = next.GoalStreak
	}
	if next.ProgressDays >= next.TotalDays {
		next.Completed = true
	}

	res.ProgressDays = next.ProgressDays
	res.TotalDays = next.TotalDays
	res.GoalStreak = next.GoalStreak
	res.LongestGoalStreak = next.LongestGoalStreak
	res.Completed = next.Completed
	return next, res
}

// DefineGoal returns a fresh goal starting today. It replaces any existing goal.
func DefineGoal(title string, totalDays int, now time.Time) (models.GoalRecord, error) {
	in := models.NewGoalInput(title, totalDays)
	if err := in.Validate(); err != nil {
		var ferr *models.FieldError
		if errors.As(err, &ferr) && ferr.Field == "TotalDays" {
			return models.GoalRecord{}, ErrInvalidGoalDuration
		}
		return models.GoalRecord{}, ErrInvalidGoalTitle
	}

	return models.GoalRecord{
		Title:     in.Title,
		StartDate: calendar.Today(now),
		TotalDays: in.TotalDays,
		CheckIns:  make(map[calendar.Day]bool),
	}, nil
}

// CheckStreakReset zeroes the streak count once a full day has been missed.
// History and the longest streak are kept.
func CheckStreakReset(rec models.StreakRecord, now time.Time) (models.StreakRecord, bool) {
	if rec.LastCheckIn.IsZero() || rec.Count == 0 {
		return rec, false
	}
	today := calendar.Today(now)
	if rec.LastCheckIn == today || calendar.DaysBetween(rec.LastCheckIn, today) <= 1 {
		return rec, false
	}

	next := rec.Clone()
	next.Count = 0
	return next, true
}

// CheckGoalStreakReset clears goal progress once a full day has been missed.
// Unlike the streak reset this also drops the check-in history.
func CheckGoalStreakReset(rec models.GoalRecord, now time.Time) (models.GoalRecord, bool) {
	if !rec.Defined() || rec.LastProgressDate.IsZero() {
		return rec, false
	}
	today := calendar.Today(now)
	if rec.LastProgressDate == today || calendar.DaysBetween(rec.LastProgressDate, today) <= 1 {
		return rec, false
	}
	if rec.ProgressDays == 0 && rec.GoalStreak == 0 && len(rec.CheckIns) == 0 && !rec.Completed {
		return rec, false
	}

	next := rec.Clone()
	next.ProgressDays = 0
	next.CheckIns = make(map[calendar.Day]bool)
	next.GoalStreak = 0
	next.Completed = false
	return next, true
}

// ApplyPassiveResets runs both reset checks. It is meant to be called once per load.
func ApplyPassiveResets(streak models.StreakRecord, goal models.GoalRecord, now time.Time) (models.StreakRecord, models.GoalRecord) {
	streak, _ = CheckStreakReset(streak, now)
	goal, _ = CheckGoalStreakReset(goal, now)
	return streak, goal
}
