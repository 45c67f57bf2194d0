// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog writes the grouped index into a SQLite database so the
// archive can be queried with SQL. The database is an output artifact:
// every run rebuilds it in full and nothing ever reads it back.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Write creates or opens the database at cfg.Path, replaces the files
// table contents with one row per entry, and returns the row count. The
// rebuild runs in a single transaction; a failed run leaves the previous
// contents intact.
func Write(ctx context.Context, cfg types.CatalogConfig, entries []types.FileEntry) (int, error) {
	dir := filepath.Dir(cfg.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return 0, fmt.Errorf("opening catalog database: %w", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM files`); err != nil {
		return 0, fmt.Errorf("clearing files table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO files (path, name, top_dir, year, extension) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var year any
		if e.Year.Known() {
			year = int(e.Year)
		}
		ext := strings.ToLower(filepath.Ext(e.Name))
		if _, err := stmt.ExecContext(ctx, e.Path, e.Name, index.TopLevelDir(e.Path), year, ext); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", e.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing catalog: %w", err)
	}
	return len(entries), nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS files (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			top_dir TEXT NOT NULL,
			year INTEGER,
			extension TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_top_dir ON files(top_dir)`,
		`CREATE INDEX IF NOT EXISTS idx_files_year ON files(year)`,
		`CREATE VIEW IF NOT EXISTS directories AS
			SELECT top_dir, COUNT(*) AS file_count
			FROM files GROUP BY top_dir ORDER BY top_dir`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}
