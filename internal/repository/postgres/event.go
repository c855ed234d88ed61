package postgres

import (
	"database/sql"
	"time"

	"calendarbot/internal/domain"
)

// EventRepo implements repository.EventRepository
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Insert adds an event; identical events are allowed
func (r *EventRepo) Insert(p domain.Partition, date domain.CalendarDate, description string) error {
	query := `
		INSERT INTO events (user_id, date, description)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, p.UserID, date.String(), description)
	return err
}

// QueryRange returns the events inside the mode's window around today, oldest first
func (r *EventRepo) QueryRange(p domain.Partition, mode domain.ListMode, today domain.CalendarDate) ([]domain.Event, error) {
	var (
		query string
		args  []any
	)

	switch mode.Kind {
	case domain.RangePast:
		query = `
			SELECT id, user_id, date, description
			FROM events
			WHERE user_id = $1 AND date <= $2
			ORDER BY date ASC, id ASC
		`
		args = []any{p.UserID, today.String()}
	case domain.RangeNextDays:
		query = `
			SELECT id, user_id, date, description
			FROM events
			WHERE user_id = $1 AND date BETWEEN $2 AND $3
			ORDER BY date ASC, id ASC
		`
		args = []any{p.UserID, today.String(), today.AddDays(mode.Days).String()}
	default:
		query = `
			SELECT id, user_id, date, description
			FROM events
			WHERE user_id = $1 AND date >= $2
			ORDER BY date ASC, id ASC
		`
		args = []any{p.UserID, today.String()}
	}

	return r.queryEvents(query, args...)
}

// ListAll returns every event of the partition, oldest first
func (r *EventRepo) ListAll(p domain.Partition) ([]domain.Event, error) {
	query := `
		SELECT id, user_id, date, description
		FROM events
		WHERE user_id = $1
		ORDER BY date ASC, id ASC
	`
	return r.queryEvents(query, p.UserID)
}

// DeleteByDate removes all events on date
func (r *EventRepo) DeleteByDate(p domain.Partition, date domain.CalendarDate) (int64, error) {
	query := `
		DELETE FROM events
		WHERE user_id = $1 AND date = $2
	`
	return r.exec(query, p.UserID, date.String())
}

// DeleteByDescription removes all events whose description matches exactly
func (r *EventRepo) DeleteByDescription(p domain.Partition, description string) (int64, error) {
	query := `
		DELETE FROM events
		WHERE user_id = $1 AND description = $2
	`
	return r.exec(query, p.UserID, description)
}

// DeleteByDateAndDescription removes all events matching both date and description
func (r *EventRepo) DeleteByDateAndDescription(p domain.Partition, date domain.CalendarDate, description string) (int64, error) {
	query := `
		DELETE FROM events
		WHERE user_id = $1 AND date = $2 AND description = $3
	`
	return r.exec(query, p.UserID, date.String(), description)
}

func (r *EventRepo) exec(query string, args ...any) (int64, error) {
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *EventRepo) queryEvents(query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e    domain.Event
			date time.Time
		)
		if err := rows.Scan(&e.ID, &e.UserID, &date, &e.Description); err != nil {
			return nil, err
		}
		e.Date = domain.DateOf(date)
		events = append(events, e)
	}

	return events, rows.Err()
}
