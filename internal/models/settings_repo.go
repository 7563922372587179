package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SettingsRepo interface {
	GetSettings(ctx context.Context) (*SiteSettings, error)
	EnsureDefaultSettings(ctx context.Context) (bool, error)
	UpdateSettings(ctx context.Context, name, description string) error
}

func (r *SQLiteRepo) GetSettings(ctx context.Context) (*SiteSettings, error) {
	const op = "models.sqlite.GetSettings"

	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM "+SettingsTable+" WHERE id = ?", SettingsID)

	var s SiteSettings
	if err := row.Scan(&s.ID, &s.Name, &s.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSettingsNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &s, nil
}

// EnsureDefaultSettings inserts the default row when none exists and reports
// whether it did.
func (r *SQLiteRepo) EnsureDefaultSettings(ctx context.Context) (bool, error) {
	const op = "models.sqlite.EnsureDefaultSettings"

	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+SettingsTable+" (id, name, description) VALUES (?, ?, ?)",
		SettingsID, DefaultSiteName, DefaultSiteDescription)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

// UpdateSettings writes the singleton row, creating it if it was removed.
func (r *SQLiteRepo) UpdateSettings(ctx context.Context, name, description string) error {
	const op = "models.sqlite.UpdateSettings"

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+SettingsTable+` (id, name, description) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, description = excluded.description
	`, SettingsID, name, description)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
