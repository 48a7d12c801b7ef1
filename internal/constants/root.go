package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// Hemisphere selects which season table is used
type Hemisphere string

const (
	AppName            = "dayly"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/dayly"
	DefaultConfigPath  = "~/.config/dayly/dayly.db"
	ConfigFileName     = "config.yaml"
	EnvFileName        = ".env"
	Version            = "v0.3.0"

	// Storage keys for the persisted state blobs
	StreakStateKey = "dayly_streak"
	GoalStateKey   = "dayly_goal"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dayly-"
	BackupFileSuffix = ".db"

	// Goal duration bounds applied by the user-facing layers
	GoalMinDays     = 7
	GoalMaxDays     = 730
	GoalDefaultDays = 90

	// StreakGridWeeks is the number of weeks shown in the check-in grid
	StreakGridWeeks = 4

	// RefreshInterval drives the dashboard clock
	RefreshInterval = time.Second

	HemisphereNorthern Hemisphere = "northern"
	HemisphereSouthern Hemisphere = "southern"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateDefineGoal
	StateActivity
)

// ClampGoalDays bounds a user-supplied goal duration to [GoalMinDays, GoalMaxDays].
func ClampGoalDays(days int) int {
	if days < GoalMinDays {
		return GoalMinDays
	}
	if days > GoalMaxDays {
		return GoalMaxDays
	}
	return days
}
