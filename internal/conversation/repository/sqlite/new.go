package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"argo-assistant/internal/conversation/repository"
	pkgLog "argo-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversation_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	user_message TEXT NOT NULL,
	assistant_response TEXT NOT NULL
);`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// Open opens (creating if needed) the SQLite database at path and ensures the log table exists.
// The parent directory is created if it doesn't exist.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// New creates a SQLite-backed conversation repository on an opened database.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
