package main

import (
	"github.com/spf13/cobra"

	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/internal/scan"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats [directory]",
	Short: "Print file-count distributions for a local tree",
	Long: `Stats scans a local tree and prints how its files distribute across
top-level directories, year folders, and extensions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringArray("ext", nil, "filter by extension (repeatable)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	exts, _ := cmd.Flags().GetStringArray("ext")

	result, err := scan.Walk(types.ScanConfig{Root: root, Extensions: scan.NormalizeExtensions(exts)})
	if err != nil {
		return err
	}

	index.FormatReport(index.BuildReport(result.Entries), cmd.OutOrStdout())
	return nil
}
