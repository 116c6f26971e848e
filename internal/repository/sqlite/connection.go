package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	base_path TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ts TEXT NOT NULL,
	title TEXT NOT NULL,
	project_id INTEGER,
	work_type TEXT,
	tags TEXT,
	paths TEXT,
	duration_hours REAL,
	notes_md TEXT,
	created_at TEXT NOT NULL,
	FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS attachments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id INTEGER NOT NULL,
	filename TEXT NOT NULL,
	rel_path TEXT NOT NULL,
	created_at TEXT NOT NULL,
	FOREIGN KEY(entry_id) REFERENCES entries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entries_ts ON entries(ts);
CREATE INDEX IF NOT EXISTS idx_entries_project ON entries(project_id);
CREATE INDEX IF NOT EXISTS idx_attachments_entry ON attachments(entry_id);
`

// Open opens (creating if necessary) the single-file database at path and
// bootstraps the schema. The caller owns the returned handle and must close
// it; the application holds exactly one for its lifetime.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single local user; one connection avoids SQLITE_BUSY races between
	// pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	return db, nil
}

// RepositoryConfig holds common dependencies for repositories
type RepositoryConfig struct {
	DB     *sql.DB
	Logger *slog.Logger
}
