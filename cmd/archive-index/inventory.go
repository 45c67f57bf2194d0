package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/internal/render"
	"github.com/yukioitsuki/archive-index/internal/scan"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory [directory]",
	Short: "Write a Markdown inventory of a local archive tree",
	Long: `Inventory walks a directory tree, groups files by top-level directory
and year folder, and writes a GitHub-ready Markdown document with one
clickable table per (directory, year) group.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().StringArray("ext", nil, "filter by extension, e.g. --ext .pdf --ext .md (repeatable)")
	inventoryCmd.Flags().StringP("output", "o", "", "output file (default INVENTORY.md)")
	inventoryCmd.Flags().String("title", "", "inventory document title")

	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	exts, _ := cmd.Flags().GetStringArray("ext")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("inventory.output")
	}
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = viper.GetString("inventory.title")
	}

	w := cmd.OutOrStdout()

	cfg := types.ScanConfig{Root: root, Extensions: scan.NormalizeExtensions(exts)}
	fmt.Fprintf(w, "Scanning: %s\n", root)
	if len(cfg.Extensions) > 0 {
		fmt.Fprintf(w, "Only including: %s\n", strings.Join(cfg.Extensions, ", "))
	}

	result, err := scan.Walk(cfg)
	if err != nil {
		return err
	}

	doc := index.BuildDocument(index.Group(result.Entries), index.DocumentOptions{})
	content := render.Markdown(doc, render.MarkdownOptions{Title: title})

	if err := render.WriteFile(output, []byte(content)); err != nil {
		return err
	}

	successf(w, "Success: %d files in %d top-level directories → %s\n",
		doc.TotalFiles, len(doc.Directories), output)
	return nil
}
