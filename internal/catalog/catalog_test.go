// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

var testEntries = []types.FileEntry{
	{Path: "A/2010/x.pdf", Name: "x.pdf", Year: 2010},
	{Path: "A/2010/y.pdf", Name: "y.pdf", Year: 2010},
	{Path: "B/z.pdf", Name: "z.pdf", Year: types.NoYear},
}

func TestWriteOneRowPerEntry(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	rows, err := Write(context.Background(), types.CatalogConfig{Path: dbPath}, testEntries)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&count))
	assert.Equal(t, 3, count)

	var name, topDir, ext string
	var year sql.NullInt64
	require.NoError(t, db.QueryRow(
		`SELECT name, top_dir, year, extension FROM files WHERE path = ?`, "A/2010/x.pdf",
	).Scan(&name, &topDir, &year, &ext))
	assert.Equal(t, "x.pdf", name)
	assert.Equal(t, "A", topDir)
	assert.True(t, year.Valid)
	assert.Equal(t, int64(2010), year.Int64)
	assert.Equal(t, ".pdf", ext)
}

func TestWriteNoYearIsNull(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, err := Write(context.Background(), types.CatalogConfig{Path: dbPath}, testEntries)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var year sql.NullInt64
	require.NoError(t, db.QueryRow(
		`SELECT year FROM files WHERE path = ?`, "B/z.pdf",
	).Scan(&year))
	assert.False(t, year.Valid, "NoYear should be stored as NULL")
}

func TestWriteDirectoriesView(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, err := Write(context.Background(), types.CatalogConfig{Path: dbPath}, testEntries)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT top_dir, file_count FROM directories ORDER BY top_dir`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		dir   string
		count int
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.dir, &r.count))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []row{{"A", 2}, {"B", 1}}, got)
}

func TestWriteRebuildsInFull(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()
	cfg := types.CatalogConfig{Path: dbPath}

	_, err := Write(ctx, cfg, testEntries)
	require.NoError(t, err)

	// A second run with fewer entries replaces the previous contents.
	rows, err := Write(ctx, cfg, testEntries[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWriteCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")

	rows, err := Write(context.Background(), types.CatalogConfig{Path: dbPath}, testEntries)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
}

func TestWriteEmptyEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	rows, err := Write(context.Background(), types.CatalogConfig{Path: dbPath}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}
