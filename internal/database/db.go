// Package database persists the training plan and user preferences in SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle for the single local user.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the database at path, creating it and its schema if needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", "", err)
	}
	// One connection keeps read-modify-write cycles serialized.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path}
	pingCtx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityDatabase, "ping", "", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path is the file backing the database.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		tier TEXT NOT NULL,
		plan_name TEXT,
		race_date TEXT NOT NULL,
		start_date TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
}

// migrations run after the base schema; "duplicate column" failures are expected on reruns.
var migrations = []string{
	"ALTER TABLE plans ADD COLUMN updated_at DATETIME",
}

func (d *Database) migrate(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	for _, query := range schema {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return wrapErr(EntityDatabase, "migrate", "", err)
		}
	}
	for _, query := range migrations {
		_, _ = d.DB.ExecContext(ctx, query)
	}
	return nil
}
