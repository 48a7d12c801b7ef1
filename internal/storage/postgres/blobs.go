package postgres

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/dayly/internal/storage"
)

func (s *Store) GetBlob(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state_blobs WHERE key = $1", key).Scan(&value)
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
		INSERT INTO state_blobs (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value))
	return err
}
