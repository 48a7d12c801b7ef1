package models

// State is everything the tracker persists.
type State struct {
	Streak StreakRecord `json:"streak"`
	Goal   GoalRecord   `json:"goal"`
}

// DefaultState returns the first-run state.
func DefaultState() State {
	return State{
		Streak: DefaultStreak(),
		Goal:   DefaultGoal(),
	}
}
