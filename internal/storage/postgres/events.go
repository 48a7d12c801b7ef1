package postgres

import (
	"time"

	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/models"
)

func (s *Store) AddEvent(event models.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO events (id, kind, day, outcome, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, string(event.Kind), event.Day, event.Outcome, event.Detail, event.CreatedAt.UTC())
	return err
}

func (s *Store) GetEvents(limit int) ([]models.Event, error) {
	query := `SELECT id, kind, day, outcome, detail, created_at FROM events ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
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
		var kind string
		var day time.Time
		if err := rows.Scan(&e.ID, &kind, &day, &e.Outcome, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = models.EventKind(kind)
		e.Day = day.Format(constants.DateFormat)
		events = append(events, e)
	}
	return events, rows.Err()
}
