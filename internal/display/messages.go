// Package display turns engine results and tracker snapshots into text for
// the CLI and the TUI.
package display

import (
	"fmt"

	"github.com/julianstephens/dayly/internal/engine"
	"github.com/julianstephens/dayly/internal/models"
)

// StreakMessage is the user-facing line for a streak check-in.
func StreakMessage(res engine.StreakResult) string {
	switch res.Outcome {
	case engine.OutcomeFirst:
		return "🎉 First day! Your streak begins!"
	case engine.OutcomeConsecutive:
		return fmt.Sprintf("🔥 Day %d! Keep the streak going!", res.Count)
	case engine.OutcomeReset:
		return fmt.Sprintf("💔 Missed %d %s. Starting fresh!", res.Missed(), plural(res.Missed(), "day", "days"))
	case engine.OutcomeAlreadyCheckedIn:
		return "Already checked in today!"
	}
	return string(res.Outcome)
}

// WelcomeMessage greets someone without a running streak. It is empty once
// a streak is under way.
func WelcomeMessage(rec models.StreakRecord) string {
	if rec.Count != 0 {
		return ""
	}
	return "Start your streak today! Come back tomorrow to continue."
}

// GoalMessage is the user-facing line for a goal check-in. Completion
// replaces the ordinary progress message.
func GoalMessage(res engine.GoalResult, title string) string {
	switch res.Outcome {
	case engine.OutcomeNoGoalDefined:
		return "No goal set! Use 'dayly goal set' to define one."
	case engine.OutcomeAlreadyRecordedToday:
		return "Already recorded progress today!"
	}

	if res.Completed {
		return fmt.Sprintf("🎉 CONGRATULATIONS! You completed your goal: %q!", title)
	}
	if res.Outcome == engine.OutcomeReset {
		return fmt.Sprintf("💔 Missed %d %s. Goal progress restarted: day %d of %d.",
			res.Missed(), plural(res.Missed(), "day", "days"), res.ProgressDays, res.TotalDays)
	}
	return fmt.Sprintf("✅ Day %d recorded! Keep going!", res.ProgressDays)
}

// GoalDefinedMessage confirms a new goal.
func GoalDefinedMessage(goal models.GoalRecord) string {
	return fmt.Sprintf("🎯 Goal set! %q for %d days. Start tracking!", goal.Title, goal.TotalDays)
}

// Informational reports whether an outcome is a neutral no-op rather than a change.
func Informational(outcome engine.Outcome) bool {
	switch outcome {
	case engine.OutcomeAlreadyCheckedIn, engine.OutcomeAlreadyRecordedToday, engine.OutcomeNoGoalDefined:
		return true
	}
	return false
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
