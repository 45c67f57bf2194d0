// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// MarkdownOptions controls the inventory document header.
type MarkdownOptions struct {
	// Title is the top-level heading (default "File Inventory").
	Title string
}

// Markdown serializes the document as the GitHub-ready inventory: one
// `###` heading per directory, one `####` heading and two-column table
// per year group, links percent-encoded with "/" kept safe. The table
// delimiter is escaped in filenames. An empty document yields the
// header and no tables, still a valid Markdown file. Output ends with a
// single trailing newline so repeated runs are byte-identical.
func Markdown(doc types.Document, opts MarkdownOptions) string {
	title := opts.Title
	if title == "" {
		title = "File Inventory"
	}

	var lines []string
	lines = append(lines, "# "+title+"\n")
	lines = append(lines, "> Auto-generated • All paths are clickable on GitHub\n")
	lines = append(lines, "## Directories\n")

	for _, dir := range doc.Directories {
		lines = append(lines, "### "+dir.Name+"\n")

		for _, yg := range dir.Years {
			lines = append(lines, "#### "+yg.Label+"\n")
			lines = append(lines, "| Filename | FilePath |")
			lines = append(lines, "|----------|----------|")

			for _, f := range yg.Files {
				name := strings.ReplaceAll(f.Name, "|", `\|`)
				link := "[" + f.Path + "](" + Quote(f.Path, "/") + ")"
				lines = append(lines, "| "+name+" | "+link+" |")
			}

			// Blank line after each table.
			lines = append(lines, "")
		}

		lines = append(lines, "---\n")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}
