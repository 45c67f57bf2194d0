// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yukioitsuki/archive-index/internal/catalog"
	"github.com/yukioitsuki/archive-index/internal/scan"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [directory]",
	Short: "Write the index into a SQLite catalog database",
	Long: `Catalog scans a local tree and writes one row per file (path, name,
top-level directory, year, extension) into a SQLite database, plus a
directories view with per-directory counts. The database is rebuilt in
full on every run; it is an output artifact, never an input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("db", "", "database file (default catalog.db)")
	catalogCmd.Flags().StringArray("ext", nil, "filter by extension (repeatable)")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("catalog.path")
	}
	exts, _ := cmd.Flags().GetStringArray("ext")

	result, err := scan.Walk(types.ScanConfig{Root: root, Extensions: scan.NormalizeExtensions(exts)})
	if err != nil {
		return err
	}

	rows, err := catalog.Write(context.Background(), types.CatalogConfig{Path: dbPath}, result.Entries)
	if err != nil {
		return err
	}

	successf(cmd.OutOrStdout(), "Cataloged %d files → %s\n", rows, dbPath)
	return nil
}
