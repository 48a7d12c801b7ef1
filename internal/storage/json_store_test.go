package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayly/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "dayly.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestJSONStoreBlobs(t *testing.T) {
	store := setupJSONStore(t)

	if _, err := store.GetBlob("dayly_streak"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.PutBlob("dayly_streak", []byte(`{"count":3}`)); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	if err := store.PutBlob("dayly_goal", []byte("{not json")); err != nil {
		t.Fatalf("PutBlob with invalid JSON failed: %v", err)
	}

	// reopen from disk
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reopened.GetBlob("dayly_streak")
	if err != nil {
		t.Fatalf("GetBlob failed: %v", err)
	}
	if string(got) != `{"count":3}` {
		t.Errorf("unexpected blob %q", got)
	}

	got, err = reopened.GetBlob("dayly_goal")
	if err != nil {
		t.Fatalf("GetBlob failed: %v", err)
	}
	if string(got) != `"{not json"` {
		t.Errorf("expected invalid JSON to be stored as a string, got %q", got)
	}
}

func TestJSONStoreEventsNewestFirst(t *testing.T) {
	store := setupJSONStore(t)
	base := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)

	for i, kind := range []models.EventKind{models.EventGoalDefined, models.EventStreakCheckIn, models.EventGoalProgress} {
		event := models.Event{ID: string(kind), Kind: kind, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := store.AddEvent(event); err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}

	events, err := store.GetEvents(2)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != models.EventGoalProgress || events[1].Kind != models.EventStreakCheckIn {
		t.Errorf("unexpected order: %v, %v", events[0].Kind, events[1].Kind)
	}

	all, _ := store.GetEvents(0)
	if len(all) != 3 {
		t.Errorf("expected all 3 events, got %d", len(all))
	}
}

func TestJSONStoreInitKeepsExistingData(t *testing.T) {
	store := setupJSONStore(t)
	if err := store.PutBlob("k", []byte(`1`)); err != nil {
		t.Fatal(err)
	}

	again := NewJSONStore(store.GetConfigPath())
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if _, err := again.GetBlob("k"); err != nil {
		t.Errorf("expected existing blob to survive Init, got %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}
