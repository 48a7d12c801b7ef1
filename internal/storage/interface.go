package storage

import (
	"errors"

	"github.com/julianstephens/dayly/internal/models"
)

// ErrNotFound is returned by GetBlob when no value is stored under a key.
var ErrNotFound = errors.New("not found")

// ErrNotInitialized is returned by Load when the backing store does not exist yet.
var ErrNotInitialized = errors.New("storage not initialized, run 'dayly init' first")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// State blobs, keyed by constants.StreakStateKey and constants.GoalStateKey
	GetBlob(key string) ([]byte, error)
	PutBlob(key string, value []byte) error

	// Activity log, newest first. limit <= 0 returns everything.
	AddEvent(models.Event) error
	GetEvents(limit int) ([]models.Event, error)

	// Utils
	GetConfigPath() string
}
