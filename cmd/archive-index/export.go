// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/internal/render"
	"github.com/yukioitsuki/archive-index/internal/scan"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [directory]",
	Short: "Write the grouped index as a YAML or JSON manifest",
	Long: `Export builds the same directory → year → files structure the renderers
consume and writes it as a machine-readable manifest for downstream
tooling.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "manifest format: yaml or json")
	exportCmd.Flags().StringArray("ext", nil, "filter by extension (repeatable)")
	exportCmd.Flags().StringP("output", "o", "", "output file (default manifest.yaml or manifest.json)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	format, _ := cmd.Flags().GetString("format")
	exts, _ := cmd.Flags().GetStringArray("ext")
	output, _ := cmd.Flags().GetString("output")

	result, err := scan.Walk(types.ScanConfig{Root: root, Extensions: scan.NormalizeExtensions(exts)})
	if err != nil {
		return err
	}

	doc := index.BuildDocument(index.Group(result.Entries), index.DocumentOptions{})

	var data []byte
	switch format {
	case "yaml", "":
		if output == "" {
			output = "manifest.yaml"
		}
		data, err = yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case "json":
		if output == "" {
			output = "manifest.json"
		}
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if err := render.WriteFile(output, data); err != nil {
		return err
	}

	successf(cmd.OutOrStdout(), "Exported %d files in %d directories → %s\n",
		doc.TotalFiles, len(doc.Directories), output)
	return nil
}
