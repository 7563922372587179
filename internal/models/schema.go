package models

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published')),
	tickets TEXT,
	created_at TEXT NOT NULL,
	published_at TEXT,
	last_modified_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_events_status_date ON events (status, date);

CREATE TABLE IF NOT EXISTS site_settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	description TEXT NOT NULL
);
`

// InitSchema creates both tables when missing and makes sure the settings row
// exists. Safe to run on every start.
func (r *SQLiteRepo) InitSchema(ctx context.Context) error {
	const op = "models.sqlite.InitSchema"

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.EnsureDefaultSettings(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
