package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	reopened, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer reopened.Close()
}

func TestOpen_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "marathon.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Fatalf("expected path %s, got %s", path, db.Path())
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "rollback"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM settings WHERE key = ?", "tx").Scan(&count); err != nil {
		t.Fatalf("query count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove setting, got count %d", count)
	}
}

func TestOpError(t *testing.T) {
	base := errors.New("boom")
	err := wrapErr(EntityPlan, "save", "abc", base)
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to match base")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Resource != EntityPlan || opErr.ID != "abc" {
		t.Fatalf("unexpected OpError %#v", err)
	}
	if got := err.Error(); got != "save plan abc: boom" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := wrapErr(EntityDatabase, "open", "", base).Error(); got != "open database: boom" {
		t.Fatalf("unexpected message %q", got)
	}
	if wrapErr(EntityPlan, "save", "", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestNullableString(t *testing.T) {
	if got := nullableString(""); got.Valid {
		t.Fatalf("expected nullableString(\"\") to be invalid, got valid")
	}
	if got := nullableString("Novice 1"); !got.Valid || got.String != "Novice 1" {
		t.Fatalf("expected nullableString to be valid, got %+v", got)
	}
}
