package tracker

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/engine"
	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/storage"
)

// fakeClock is a settable clock for stepping across days.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(days int) { c.now = c.now.AddDate(0, 0, days) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
}

func setupStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dayly.json"))
	require.NoError(t, store.Init())
	return store
}

// failingStore accepts reads but rejects every write.
type failingStore struct {
	*storage.JSONStore
}

var errDiskFull = errors.New("disk full")

func (failingStore) PutBlob(string, []byte) error { return errDiskFull }

func (failingStore) AddEvent(models.Event) error { return errDiskFull }

func TestLoadDefaultsOnFirstRun(t *testing.T) {
	tr := New(setupStore(t), newClock())

	state, err := tr.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, state.Streak.Count)
	assert.True(t, state.Streak.LastCheckIn.IsZero())
	assert.False(t, state.Goal.Defined())
	assert.Equal(t, constants.GoalDefaultDays, state.Goal.TotalDays)
}

func TestLoadTreatsCorruptDataAsAbsent(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.PutBlob(constants.StreakStateKey, []byte(`{"count":"lots"`)))
	require.NoError(t, store.PutBlob(constants.GoalStateKey, []byte(`[1,2,3]`)))

	state, err := New(store, newClock()).Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStreak().Count, state.Streak.Count)
	assert.NotNil(t, state.Streak.CheckIns)
	assert.False(t, state.Goal.Defined())
}

func TestLoadReadsLegacyFormat(t *testing.T) {
	store := setupStore(t)
	clock := newClock()
	today := calendar.Today(clock.Now())
	legacy := `{"count":4,"lastCheckIn":"` + today.AddDays(-1).String() + `T00:00:00.000Z","longestStreak":2}`
	require.NoError(t, store.PutBlob(constants.StreakStateKey, []byte(legacy)))

	state, err := New(store, clock).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, state.Streak.Count)
	assert.Equal(t, 4, state.Streak.LongestStreak, "longest is raised to the current count")
	assert.True(t, state.Streak.CheckedIn(today.AddDays(-1)))
}

func TestCheckInFlow(t *testing.T) {
	store := setupStore(t)
	clock := newClock()
	tr := New(store, clock)

	first := tr.CheckIn()
	require.NoError(t, first.Warning)
	assert.Equal(t, engine.OutcomeFirst, first.Result.Outcome)

	again := tr.CheckIn()
	assert.False(t, again.Result.Success)
	assert.Equal(t, engine.OutcomeAlreadyCheckedIn, again.Result.Outcome)

	clock.advance(1)
	second := tr.CheckIn()
	assert.Equal(t, engine.OutcomeConsecutive, second.Result.Outcome)
	assert.Equal(t, 2, second.Record.Count)

	// a new tracker over the same store sees the persisted streak
	state, err := New(store, clock).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, state.Streak.Count)
	assert.Equal(t, 2, state.Streak.LongestStreak)

	events, err := tr.Events(0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventStreakCheckIn, events[0].Kind)
	assert.Equal(t, string(engine.OutcomeConsecutive), events[0].Outcome)
}

func TestPassiveResetOnLoad(t *testing.T) {
	store := setupStore(t)
	clock := newClock()
	tr := New(store, clock)
	tr.CheckIn()
	_, err := tr.DefineGoal("Journal", 30)
	require.NoError(t, err)
	tr.RecordGoalProgress()

	clock.advance(1)
	state, err := New(store, clock).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, state.Streak.Count, "yesterday's check-in keeps the streak")
	assert.Equal(t, 1, state.Goal.ProgressDays)

	clock.advance(2)
	state, err = New(store, clock).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, state.Streak.Count)
	assert.Len(t, state.Streak.CheckIns, 1, "streak history survives a passive reset")
	assert.Equal(t, 0, state.Goal.ProgressDays)
	assert.Empty(t, state.Goal.CheckIns)
	assert.Equal(t, "Journal", state.Goal.Title)

	var persisted models.StreakRecord
	raw, err := store.GetBlob(constants.StreakStateKey)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, 0, persisted.Count)

	events, err := store.GetEvents(0)
	require.NoError(t, err)
	kinds := map[models.EventKind]int{}
	for _, e := range events {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[models.EventStreakReset])
	assert.Equal(t, 1, kinds[models.EventGoalReset])
}

func TestDayRolloverReloads(t *testing.T) {
	clock := newClock()
	tr := New(setupStore(t), clock)
	tr.CheckIn()

	clock.advance(3)
	snap := tr.Snapshot()
	assert.Equal(t, 0, snap.Streak.Count)
	assert.Equal(t, calendar.Today(clock.Now()), snap.Today)
}

func TestGoalFlow(t *testing.T) {
	clock := newClock()
	tr := New(setupStore(t), clock)

	none := tr.RecordGoalProgress()
	assert.Equal(t, engine.OutcomeNoGoalDefined, none.Result.Outcome)

	_, err := tr.DefineGoal("   ", 10)
	assert.ErrorIs(t, err, engine.ErrInvalidGoalTitle)
	_, err = tr.DefineGoal("Walk", 0)
	assert.ErrorIs(t, err, engine.ErrInvalidGoalDuration)

	def, err := tr.DefineGoal("Walk", 7)
	require.NoError(t, err)
	require.NoError(t, def.Warning)
	assert.Equal(t, calendar.Today(clock.Now()), def.Record.StartDate)

	var last GoalCheckIn
	for i := 0; i < 7; i++ {
		last = tr.RecordGoalProgress()
		require.True(t, last.Result.Success, "day %d", i)
		clock.advance(1)
	}
	assert.True(t, last.Result.Completed)
	assert.Equal(t, 7, last.Record.ProgressDays)
	assert.Equal(t, 7, last.Record.LongestGoalStreak)
}

func TestSaveFailureIsAWarning(t *testing.T) {
	store := failingStore{setupStore(t)}
	tr := New(store, newClock())

	res := tr.CheckIn()
	assert.True(t, res.Result.Success)
	assert.Equal(t, 1, res.Record.Count)
	require.Error(t, res.Warning)
	assert.ErrorIs(t, res.Warning, errDiskFull)

	// in-memory state keeps the transition, so a repeat is still idempotent
	again := tr.CheckIn()
	assert.Equal(t, engine.OutcomeAlreadyCheckedIn, again.Result.Outcome)

	def, err := tr.DefineGoal("Swim", 30)
	require.NoError(t, err)
	assert.ErrorIs(t, def.Warning, errDiskFull)
	assert.True(t, tr.State().Goal.Defined())
}

func TestSnapshot(t *testing.T) {
	clock := newClock()
	tr := New(setupStore(t), clock)
	tr.SetHemisphere(constants.HemisphereSouthern)

	snap := tr.Snapshot()
	assert.Equal(t, 69, snap.Year.DayOfYear)
	assert.Equal(t, "March", snap.Month.MonthName)
	assert.Equal(t, "Autumn", snap.Season.Name)
}

func TestStateLoadsPersistedRecords(t *testing.T) {
	store := setupStore(t)
	first := New(store, newClock())
	_, err := first.DefineGoal("Swim", 30)
	require.NoError(t, err)

	fresh := New(store, newClock())
	goal := fresh.State().Goal
	assert.True(t, goal.Defined())
	assert.Equal(t, "Swim", goal.Title)
	assert.Equal(t, 30, goal.TotalDays)
}

func TestStateIsACopy(t *testing.T) {
	tr := New(setupStore(t), newClock())
	tr.CheckIn()

	state := tr.State()
	for day := range state.Streak.CheckIns {
		delete(state.Streak.CheckIns, day)
	}
	assert.Len(t, tr.State().Streak.CheckIns, 1)
}
