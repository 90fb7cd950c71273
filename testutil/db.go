// Package testutil provides shared helpers for storage-backed tests.
// SQLite needs no external server, so every test gets its own throwaway
// database file with all migrations applied.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/trailhead-app/trail-planner/migrations"
)

// NewDB opens a fresh SQLite database in the test's temp directory and runs
// all embedded goose migrations against it. The file lives in t.TempDir(),
// so it disappears with the test; the handle is closed automatically when
// the test (and all its subtests) finish.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trail-planner-test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// The driver allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under parallel subtests.
	db.SetMaxOpenConns(1)

	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("testutil.NewDB: set dialect: %v", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("testutil.NewDB: migrate: %v", err)
	}

	return db
}
