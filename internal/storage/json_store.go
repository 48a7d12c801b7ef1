package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/dayly/internal/models"
)

// document is the on-disk layout of a JSONStore file.
type document struct {
	Version int                        `json:"version"`
	Blobs   map[string]json.RawMessage `json:"blobs"`
	Events  []models.Event             `json:"events"`
}

// JSONStore keeps every blob and event in a single JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &document{
		Version: 1,
		Blobs:   make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Blobs == nil {
		doc.Blobs = make(map[string]json.RawMessage)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetBlob(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.doc.Blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(raw), nil
}

// PutBlob stores value under key. Values that are not valid JSON are kept as
// JSON strings so the file stays parseable.
func (s *JSONStore) PutBlob(key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	raw := json.RawMessage(append([]byte(nil), value...))
	if !json.Valid(value) {
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return err
		}
		raw = quoted
	}
	s.doc.Blobs[key] = raw
	return s.save()
}

func (s *JSONStore) AddEvent(event models.Event) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Events = append(s.doc.Events, event)
	return s.save()
}

func (s *JSONStore) GetEvents(limit int) ([]models.Event, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	events := make([]models.Event, len(s.doc.Events))
	copy(events, s.doc.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
