package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studyhub/internal/core/model"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "studyhub.sqlite"

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS pomodoro_state (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  completed_focus_count INTEGER NOT NULL,
  current_stage TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);`,
}

// SQLiteStateStore keeps the record in a single-row SQLite table.
type SQLiteStateStore struct {
	db *sql.DB
}

// OpenSQLiteStateStore opens home/studyhub.sqlite and applies migrations.
func OpenSQLiteStateStore(home string) (*SQLiteStateStore, error) {
	dbPath := filepath.Join(home, sqliteFileName)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite state: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &SQLiteStateStore{db: db}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (store *SQLiteStateStore) migrate(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, query := range pragmas {
		if _, err := store.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	if _, err := store.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at INTEGER NOT NULL
);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for index, statement := range sqliteMigrations {
		version := index + 1
		var exists int
		err := store.db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE version = ?`, version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %d: %w", version, err)
		}

		tx, err := store.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)`, version, time.Now().Unix()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the single state row.
func (store *SQLiteStateStore) Load(ctx context.Context) (model.Record, error) {
	var (
		completed int
		stage     string
	)
	err := store.db.QueryRowContext(ctx,
		`SELECT completed_focus_count, current_stage FROM pomodoro_state WHERE id = 1`,
	).Scan(&completed, &stage)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultRecord(), nil
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("query pomodoro state: %w", err)
	}
	return decodeRecord(completed, stage)
}

// Save upserts the single state row.
func (store *SQLiteStateStore) Save(ctx context.Context, record model.Record) error {
	_, err := store.db.ExecContext(ctx, `
INSERT INTO pomodoro_state(id, completed_focus_count, current_stage, updated_at)
VALUES(1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  completed_focus_count = excluded.completed_focus_count,
  current_stage = excluded.current_stage,
  updated_at = excluded.updated_at`,
		record.CompletedFocusCount, string(record.CurrentStage), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save pomodoro state: %w", err)
	}
	return nil
}

// Clear deletes the state row.
func (store *SQLiteStateStore) Clear(ctx context.Context) error {
	if _, err := store.db.ExecContext(ctx, `DELETE FROM pomodoro_state`); err != nil {
		return fmt.Errorf("clear pomodoro state: %w", err)
	}
	return nil
}

// Close closes the database.
func (store *SQLiteStateStore) Close() error {
	if store == nil || store.db == nil {
		return nil
	}
	return store.db.Close()
}
