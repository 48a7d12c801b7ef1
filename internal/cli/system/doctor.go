package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/dayly/internal/backup"
	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/storage"
	"github.com/julianstephens/dayly/internal/storage/sqlite"
)

// schemaVersioner is implemented by the SQL-backed stores.
type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*cli.Context) error
	warning bool
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		report("Database reachable", err, false)
		hasError = true
	} else {
		report("Database reachable", nil, false)
		dbReachable = true
	}

	checks := []check{
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Migrations complete", run: checkMigrationsComplete},
		{name: "Backups present", run: checkBackupsPresent, warning: true},
	}
	for _, c := range checks {
		err := c.run(ctx)
		report(c.name, err, c.warning)
		if err != nil && !c.warning {
			hasError = true
		}
	}

	if dbReachable {
		err := checkStateIntegrity(ctx)
		report("State integrity", err, false)
		if err != nil {
			hasError = true
		}
	} else {
		fmt.Printf("⊘ State integrity: SKIPPED (database not reachable)\n")
	}

	err := checkClockTimezone(ctx)
	report("Clock/timezone", err, false)
	if err != nil {
		hasError = true
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func report(name string, err error, warning bool) {
	switch {
	case err == nil:
		fmt.Printf("✓ %s: OK\n", name)
	case warning:
		fmt.Printf("⚠ %s: WARNING\n", name)
		fmt.Printf("   %v\n", err)
	default:
		fmt.Printf("❌ %s: FAIL\n", name)
		fmt.Printf("   Error: %v\n", err)
	}
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if s, ok := ctx.Store.(*sqlite.Store); ok {
		db := s.GetDB()
		if db == nil {
			return errors.New("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		// JSON store doesn't have schema version
		return nil
	}

	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return nil
	}

	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'dayly backup create'")
	}
	return nil
}

// checkStateIntegrity reads the raw blobs rather than the tracker's state,
// because the tracker quietly repairs what this check wants to report.
func checkStateIntegrity(ctx *cli.Context) error {
	today := calendar.Today(ctx.Clock.Now())

	var streak models.StreakRecord
	if ok, err := readBlob(ctx.Store, constants.StreakStateKey, &streak); err != nil {
		return err
	} else if ok {
		if err := validateStreak(streak, today); err != nil {
			return fmt.Errorf("streak: %w", err)
		}
	}

	var goal models.GoalRecord
	if ok, err := readBlob(ctx.Store, constants.GoalStateKey, &goal); err != nil {
		return err
	} else if ok {
		if err := validateGoal(goal, today); err != nil {
			return fmt.Errorf("goal: %w", err)
		}
	}
	return nil
}

func readBlob(store storage.Provider, key string, out interface{}) (bool, error) {
	data, err := store.GetBlob(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%s is corrupt and will be reset to defaults: %w", key, err)
	}
	return true, nil
}

func validateStreak(r models.StreakRecord, today calendar.Day) error {
	if r.Count < 0 {
		return fmt.Errorf("negative count %d", r.Count)
	}
	if r.LongestStreak < r.Count {
		return fmt.Errorf("longest streak %d is below current count %d", r.LongestStreak, r.Count)
	}
	if r.Count > 0 && r.LastCheckIn.IsZero() {
		return errors.New("count is set but there is no last check-in")
	}
	if !r.LastCheckIn.IsZero() && r.CheckIns[r.LastCheckIn] <= 0 {
		return fmt.Errorf("last check-in %s is missing from the check-in history", r.LastCheckIn)
	}
	for day := range r.CheckIns {
		if day.After(today) {
			return fmt.Errorf("check-in dated in the future: %s", day)
		}
	}
	return nil
}

func validateGoal(g models.GoalRecord, today calendar.Day) error {
	if g.Title == "" {
		return nil
	}
	if g.StartDate.IsZero() {
		return errors.New("goal has a title but no start date")
	}
	if g.TotalDays <= 0 {
		return fmt.Errorf("invalid total days %d", g.TotalDays)
	}
	if g.ProgressDays < 0 {
		return fmt.Errorf("negative progress %d", g.ProgressDays)
	}
	if g.Completed != (g.ProgressDays >= g.TotalDays) {
		return fmt.Errorf("completed flag disagrees with progress %d/%d", g.ProgressDays, g.TotalDays)
	}
	if g.LongestGoalStreak < g.GoalStreak {
		return fmt.Errorf("longest goal streak %d is below current %d", g.LongestGoalStreak, g.GoalStreak)
	}
	if !g.LastProgressDate.IsZero() && g.LastProgressDate.After(today) {
		return fmt.Errorf("progress dated in the future: %s", g.LastProgressDate)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	if _, err := calendar.LoadLocation(ctx.Config.Timezone); err != nil {
		return err
	}

	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	name, offset := now.Zone()
	fmt.Printf("   Timezone: %s (UTC%+03d:%02d)\n", name, offset/3600, abs(offset%3600)/60)
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
