package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// SQLiteRepo is the only place SQL is issued. It borrows the handle opened by
// connect.SQLiteConnect and never closes it.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(raw sql.NullString) (*time.Time, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, raw.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", raw.String, err)
	}
	return &t, nil
}
