package models

import "time"

// EventKind identifies what produced an activity log entry.
type EventKind string

const (
	EventStreakCheckIn EventKind = "streak_check_in"
	EventGoalProgress  EventKind = "goal_progress"
	EventGoalDefined   EventKind = "goal_defined"
	EventStreakReset   EventKind = "streak_reset"
	EventGoalReset     EventKind = "goal_reset"
)

// Event is one entry of the activity log.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
