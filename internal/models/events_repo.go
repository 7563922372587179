package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, title, date string, createdAt time.Time) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	ListEventsByStatus(ctx context.Context, status EventStatus) ([]*Event, error)
	ListPublishedSummaries(ctx context.Context) ([]EventSummary, error)
	UpdateEvent(ctx context.Context, id int64, update EventUpdate) error
	PublishEvent(ctx context.Context, id int64, at time.Time) error
	DeleteEvent(ctx context.Context, id int64) error
}

const eventColumns = "id, title, description, date, status, tickets, created_at, published_at, last_modified_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*Event, error) {
	var (
		e                       Event
		createdAt               string
		publishedAt, modifiedAt sql.NullString
	)

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Status, &e.Tickets,
		&createdAt, &publishedAt, &modifiedAt); err != nil {
		return nil, err
	}

	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = created

	if e.PublishedAt, err = parseTime(publishedAt); err != nil {
		return nil, err
	}
	if e.ModifiedAt, err = parseTime(modifiedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

// CreateEvent inserts a draft and returns the id SQLite assigned to it.
func (r *SQLiteRepo) CreateEvent(ctx context.Context, title, date string, createdAt time.Time) (int64, error) {
	const op = "models.sqlite.CreateEvent"

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO "+EventsTable+" (title, date, status, created_at) VALUES (?, ?, ?, ?)",
		title, date, StatusDraft, formatTime(createdAt))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SQLiteRepo) GetEventByID(ctx context.Context, id int64) (*Event, error) {
	const op = "models.sqlite.GetEventByID"

	row := r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM "+EventsTable+" WHERE id = ?", id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// ListEventsByStatus returns every event in the given state, soonest date first.
func (r *SQLiteRepo) ListEventsByStatus(ctx context.Context, status EventStatus) ([]*Event, error) {
	const op = "models.sqlite.ListEventsByStatus"

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM "+EventsTable+" WHERE status = ? ORDER BY date ASC, id ASC", status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := []*Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// ListPublishedSummaries orders by the stored date text. That is only
// chronological because dates are always YYYY-MM-DD.
func (r *SQLiteRepo) ListPublishedSummaries(ctx context.Context) ([]EventSummary, error) {
	const op = "models.sqlite.ListPublishedSummaries"

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, date FROM "+EventsTable+" WHERE status = ? ORDER BY date ASC, id ASC", StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	summaries := []EventSummary{}
	for rows.Next() {
		var s EventSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return summaries, nil
}

func (r *SQLiteRepo) UpdateEvent(ctx context.Context, id int64, update EventUpdate) error {
	const op = "models.sqlite.UpdateEvent"

	res, err := r.db.ExecContext(ctx, `
		UPDATE `+EventsTable+`
		SET title = ?, description = ?, date = ?, tickets = ?, last_modified_at = ?
		WHERE id = ?
	`, update.Title, update.Description, update.Date, update.Tickets, formatTime(update.ModifiedAt), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}

	return nil
}

// PublishEvent marks the event published. published_at keeps its first value
// on republish, and an unknown id is a no-op rather than an error.
func (r *SQLiteRepo) PublishEvent(ctx context.Context, id int64, at time.Time) error {
	const op = "models.sqlite.PublishEvent"

	_, err := r.db.ExecContext(ctx, `
		UPDATE `+EventsTable+`
		SET status = ?, published_at = COALESCE(published_at, ?)
		WHERE id = ?
	`, StatusPublished, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SQLiteRepo) DeleteEvent(ctx context.Context, id int64) error {
	const op = "models.sqlite.DeleteEvent"

	if _, err := r.db.ExecContext(ctx, "DELETE FROM "+EventsTable+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
