package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

func openSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS receipts(
  id           TEXT PRIMARY KEY,
  created_unix INTEGER NOT NULL,
  promotion    TEXT NOT NULL,
  base_cents   INTEGER NOT NULL,
  total_cents  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS receipt_items(
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  receipt_id TEXT NOT NULL,
  fruit      TEXT NOT NULL,
  qty        TEXT NOT NULL,
  unit_cents INTEGER NOT NULL,
  line_cents INTEGER NOT NULL,
  FOREIGN KEY(receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_receipts_created ON receipts(created_unix);
CREATE INDEX IF NOT EXISTS idx_items_receipt ON receipt_items(receipt_id);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
