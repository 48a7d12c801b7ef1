package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "dayly.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreImplementsProvider(t *testing.T) {
	var _ storage.Provider = (*Store)(nil)
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestBlobUpsert(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetBlob("dayly_goal"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.PutBlob("dayly_goal", []byte(`{"title":"a"}`)); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	if err := store.PutBlob("dayly_goal", []byte(`{"title":"b"}`)); err != nil {
		t.Fatalf("PutBlob overwrite failed: %v", err)
	}

	got, err := store.GetBlob("dayly_goal")
	if err != nil {
		t.Fatalf("GetBlob failed: %v", err)
	}
	if string(got) != `{"title":"b"}` {
		t.Errorf("expected overwritten value, got %q", got)
	}
}

func TestEventsPersistAcrossReopen(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2025, time.July, 4, 7, 30, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := store.AddEvent(models.Event{
			ID:        uuid.NewString(),
			Kind:      models.EventStreakCheckIn,
			Day:       base.AddDate(0, 0, i).Format("2006-01-02"),
			Outcome:   "consecutive",
			CreatedAt: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}
	path := store.GetConfigPath()
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	events, err := reopened.GetEvents(2)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Day != "2025-07-06" {
		t.Errorf("expected newest event first, got %s", events[0].Day)
	}
	if !events[0].CreatedAt.Equal(base.AddDate(0, 0, 2)) {
		t.Errorf("created_at did not round-trip: %v", events[0].CreatedAt)
	}
}

func TestEventsNewestFirstWithinSecond(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	events := []models.Event{
		{ID: "older", Kind: models.EventStreakCheckIn, Day: "2025-03-10", CreatedAt: base},
		{ID: "newer", Kind: models.EventGoalProgress, Day: "2025-03-10", CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "newest", Kind: models.EventGoalProgress, Day: "2025-03-10", CreatedAt: base.Add(500*time.Millisecond + 12345*time.Microsecond)},
	}
	// Insert out of order so rowid cannot decide the result.
	for _, i := range []int{2, 0, 1} {
		if err := store.AddEvent(events[i]); err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}

	got, err := store.GetEvents(0)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, id := range []string{"newest", "newer", "older"} {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if !got[2].CreatedAt.Equal(base) {
		t.Errorf("created_at did not round-trip: %v", got[2].CreatedAt)
	}
}

func TestSchemaVersion(t *testing.T) {
	store := setupTestStore(t)
	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || current < 1 {
		t.Errorf("expected fully migrated schema, got current=%d latest=%d", current, latest)
	}
}
