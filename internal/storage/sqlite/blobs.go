package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/dayly/internal/storage"
)

func (s *Store) GetBlob(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state_blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *Store) PutBlob(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO state_blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339))
	return err
}
