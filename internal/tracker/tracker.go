// Package tracker owns the persisted streak and goal state. It loads records
// through a storage.Provider, runs the engine's transitions against an
// injected clock and writes the results back.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/engine"
	"github.com/julianstephens/dayly/internal/logger"
	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/seasons"
	"github.com/julianstephens/dayly/internal/storage"
)

type Tracker struct {
	store      storage.Provider
	clock      calendar.Clock
	hemisphere constants.Hemisphere

	state    models.State
	loaded   bool
	loadedOn calendar.Day
}

// StreakCheckIn is the outcome of CheckIn. Warning is set when the new state
// could not be persisted; Record and Result are still authoritative.
type StreakCheckIn struct {
	Record  models.StreakRecord
	Result  engine.StreakResult
	Warning error
}

type GoalCheckIn struct {
	Record  models.GoalRecord
	Result  engine.GoalResult
	Warning error
}

type GoalDefinition struct {
	Record  models.GoalRecord
	Warning error
}

// Snapshot is everything a dashboard needs for one render.
type Snapshot struct {
	Now    time.Time
	Today  calendar.Day
	Year   calendar.YearProgress
	Month  calendar.MonthProgress
	Season seasons.Season
	Streak models.StreakRecord
	Goal   models.GoalRecord
}

func New(store storage.Provider, clock calendar.Clock) *Tracker {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Tracker{
		store:      store,
		clock:      clock,
		hemisphere: constants.HemisphereNorthern,
	}
}

// SetHemisphere selects the season table used by Snapshot.
func (t *Tracker) SetHemisphere(h constants.Hemisphere) {
	t.hemisphere = h
}

// Load reads both records, substituting defaults for anything absent or
// unreadable, then applies the passive resets. The returned state is always
// usable; a non-nil error only reports that a reset could not be persisted.
func (t *Tracker) Load() (models.State, error) {
	now := t.clock.Now()
	today := calendar.Today(now)

	streak := models.DefaultStreak()
	if ok := t.readBlob(constants.StreakStateKey, &streak); !ok {
		streak = models.DefaultStreak()
	}
	streak.Normalize()

	goal := models.DefaultGoal()
	if ok := t.readBlob(constants.GoalStateKey, &goal); !ok {
		goal = models.DefaultGoal()
	}
	goal.Normalize()

	var errs []error
	if next, fired := engine.CheckStreakReset(streak, now); fired {
		logger.Info("Streak reset after missed day", "last_check_in", streak.LastCheckIn, "count", streak.Count)
		streak = next
		if err := t.saveStreak(streak); err != nil {
			errs = append(errs, fmt.Errorf("failed to save streak after reset: %w", err))
		}
		if err := t.recordEvent(models.EventStreakReset, today, string(engine.OutcomeReset),
			fmt.Sprintf("last check-in %s", streak.LastCheckIn)); err != nil {
			errs = append(errs, err)
		}
	}

	if next, fired := engine.CheckGoalStreakReset(goal, now); fired {
		logger.Info("Goal progress reset after missed day", "goal", goal.Title, "last_progress", goal.LastProgressDate)
		goal = next
		if err := t.saveGoal(goal); err != nil {
			errs = append(errs, fmt.Errorf("failed to save goal after reset: %w", err))
		}
		if err := t.recordEvent(models.EventGoalReset, today, string(engine.OutcomeReset),
			fmt.Sprintf("%s: last progress %s", goal.Title, goal.LastProgressDate)); err != nil {
			errs = append(errs, err)
		}
	}

	t.state = models.State{Streak: streak, Goal: goal}
	t.loaded = true
	t.loadedOn = today
	return t.clone(), errors.Join(errs...)
}

// readBlob decodes key into out. It returns false for absent or corrupt data.
func (t *Tracker) readBlob(key string, out interface{}) bool {
	data, err := t.store.GetBlob(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read state, using defaults", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Corrupt state, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

func (t *Tracker) ensureLoaded() {
	if !t.loaded || calendar.Today(t.clock.Now()) != t.loadedOn {
		if _, err := t.Load(); err != nil {
			logger.Warn("Passive reset was not persisted", "error", err)
		}
	}
}

// State returns a copy of the current records, loading them first if needed.
func (t *Tracker) State() models.State {
	t.ensureLoaded()
	return t.clone()
}

func (t *Tracker) clone() models.State {
	return models.State{Streak: t.state.Streak.Clone(), Goal: t.state.Goal.Clone()}
}

// CheckIn records today's streak check-in.
func (t *Tracker) CheckIn() StreakCheckIn {
	t.ensureLoaded()

	next, res := engine.CheckInStreak(t.state.Streak, t.clock.Now())
	out := StreakCheckIn{Record: next.Clone(), Result: res}
	if !res.Success {
		return out
	}

	t.state.Streak = next
	var errs []error
	if err := t.saveStreak(next); err != nil {
		errs = append(errs, fmt.Errorf("failed to save streak: %w", err))
	}
	detail := fmt.Sprintf("streak %d", res.Count)
	if res.Outcome == engine.OutcomeReset {
		detail = fmt.Sprintf("streak restarted after %d day(s)", res.Missed())
	}
	if err := t.recordEvent(models.EventStreakCheckIn, res.Day, string(res.Outcome), detail); err != nil {
		errs = append(errs, err)
	}
	out.Warning = errors.Join(errs...)
	return out
}

// RecordGoalProgress records today's progress toward the active goal.
func (t *Tracker) RecordGoalProgress() GoalCheckIn {
	t.ensureLoaded()

	next, res := engine.CheckInGoal(t.state.Goal, t.clock.Now())
	out := GoalCheckIn{Record: next.Clone(), Result: res}
	if !res.Success {
		return out
	}

	t.state.Goal = next
	var errs []error
	if err := t.saveGoal(next); err != nil {
		errs = append(errs, fmt.Errorf("failed to save goal: %w", err))
	}
	detail := fmt.Sprintf("%s: %d/%d", next.Title, res.ProgressDays, res.TotalDays)
	if res.Completed {
		detail += " (completed)"
	}
	if err := t.recordEvent(models.EventGoalProgress, res.Day, string(res.Outcome), detail); err != nil {
		errs = append(errs, err)
	}
	out.Warning = errors.Join(errs...)
	return out
}

// DefineGoal replaces the current goal with a new one starting today.
func (t *Tracker) DefineGoal(title string, totalDays int) (GoalDefinition, error) {
	t.ensureLoaded()

	goal, err := engine.DefineGoal(title, totalDays, t.clock.Now())
	if err != nil {
		return GoalDefinition{}, err
	}

	t.state.Goal = goal
	out := GoalDefinition{Record: goal.Clone()}
	var errs []error
	if err := t.saveGoal(goal); err != nil {
		errs = append(errs, fmt.Errorf("failed to save goal: %w", err))
	}
	detail := fmt.Sprintf("%s (%d days)", goal.Title, goal.TotalDays)
	if err := t.recordEvent(models.EventGoalDefined, goal.StartDate, "", detail); err != nil {
		errs = append(errs, err)
	}
	out.Warning = errors.Join(errs...)
	return out, nil
}

// Events returns the newest activity log entries.
func (t *Tracker) Events(limit int) ([]models.Event, error) {
	return t.store.GetEvents(limit)
}

// Snapshot computes the dashboard view for the current instant.
func (t *Tracker) Snapshot() Snapshot {
	t.ensureLoaded()
	now := t.clock.Now()
	return Snapshot{
		Now:    now,
		Today:  calendar.Today(now),
		Year:   engine.ComputeYearProgress(now),
		Month:  engine.ComputeMonthProgress(now),
		Season: seasons.Current(now, t.hemisphere),
		Streak: t.state.Streak.Clone(),
		Goal:   t.state.Goal.Clone(),
	}
}

func (t *Tracker) saveStreak(rec models.StreakRecord) error {
	return t.putJSON(constants.StreakStateKey, rec)
}

func (t *Tracker) saveGoal(rec models.GoalRecord) error {
	return t.putJSON(constants.GoalStateKey, rec)
}

func (t *Tracker) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to serialize state", "key", key, "error", err)
		return err
	}
	if err := t.store.PutBlob(key, data); err != nil {
		logger.Error("Failed to save state", "key", key, "error", err)
		return err
	}
	return nil
}

func (t *Tracker) recordEvent(kind models.EventKind, day calendar.Day, outcome, detail string) error {
	event := models.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Day:       day.String(),
		Outcome:   outcome,
		Detail:    detail,
		CreatedAt: t.clock.Now(),
	}
	if err := t.store.AddEvent(event); err != nil {
		logger.Warn("Failed to append activity event", "kind", kind, "error", err)
		return fmt.Errorf("failed to record %s event: %w", kind, err)
	}
	return nil
}
