package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshua-takyi/stretch/internal/clock"
	"github.com/joshua-takyi/stretch/internal/connect"
	"github.com/joshua-takyi/stretch/internal/models"
)

// FixedNow is the instant every test clock is frozen at.
var FixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func FixedClock() clock.Clock {
	return clock.NewFixed(FixedNow)
}

// NewTestDB opens a fresh SQLite file under t.TempDir and closes it on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := connect.SQLiteConnect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		_ = connect.SQLiteDisconnect(db)
	})

	return db
}

// NewTestRepo returns a repository over a fresh database with the schema applied.
func NewTestRepo(t *testing.T) (*models.SQLiteRepo, *sql.DB) {
	t.Helper()

	db := NewTestDB(t)
	repo := models.NewSQLiteRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := repo.InitSchema(ctx); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	return repo, db
}

func InsertEvent(t *testing.T, repo *models.SQLiteRepo, title, date string) int64 {
	t.Helper()

	id, err := repo.CreateEvent(context.Background(), title, date, FixedNow)
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}
	return id
}

func InsertPublishedEvent(t *testing.T, repo *models.SQLiteRepo, title, date string) int64 {
	t.Helper()

	id := InsertEvent(t, repo, title, date)
	if err := repo.PublishEvent(context.Background(), id, FixedNow); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	return id
}
