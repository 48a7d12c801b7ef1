package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/models"
)

func (s *Store) AddEvent(event models.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO events (id, kind, day, outcome, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, string(event.Kind), event.Day, event.Outcome, event.Detail,
		event.CreatedAt.UTC().Format(constants.TimestampFormat))
	return err
}

func (s *Store) GetEvents(limit int) ([]models.Event, error) {
	query := `SELECT id, kind, day, outcome, detail, created_at FROM events ORDER BY created_at DESC, rowid DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var kind, createdAt string
		if err := rows.Scan(&e.ID, &kind, &e.Day, &e.Outcome, &e.Detail, &createdAt); err != nil {
			return nil, err
		}
		e.Kind = models.EventKind(kind)
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
