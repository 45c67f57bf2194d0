// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"sort"
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// DocumentOptions controls entry ordering within a year group.
type DocumentOptions struct {
	// FoldCase sorts entries by lowercased path instead of raw byte
	// order. The HTML index uses folded order; the Markdown inventory
	// keeps the default.
	FoldCase bool
}

// BuildDocument turns a grouped index into the ordered document form:
// directories ascending lexical, years ascending numeric with NoYear
// last, entries sorted by path. Empty buckets are dropped. An empty
// grouped index yields a document with no sections and a zero total.
func BuildDocument(g Grouped, opts DocumentOptions) types.Document {
	dirs := make([]string, 0, len(g))
	for name := range g {
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)

	var doc types.Document
	for _, name := range dirs {
		section := types.DirectorySection{Name: name}

		for _, year := range sortedYears(g[name]) {
			files := g[name][year]
			if len(files) == 0 {
				continue
			}
			files = append([]types.FileEntry(nil), files...)
			sortEntries(files, opts.FoldCase)

			section.Years = append(section.Years, types.YearGroup{
				Year:  year,
				Label: year.String(),
				Files: files,
			})
			doc.TotalFiles += len(files)
		}

		doc.Directories = append(doc.Directories, section)
	}
	return doc
}

// sortedYears returns the bucket keys ascending, with NoYear moved last.
func sortedYears(byYear map[types.Year][]types.FileEntry) []types.Year {
	years := make([]types.Year, 0, len(byYear))
	hasNoYear := false
	for y := range byYear {
		if y == types.NoYear {
			hasNoYear = true
			continue
		}
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	if hasNoYear {
		years = append(years, types.NoYear)
	}
	return years
}

func sortEntries(files []types.FileEntry, foldCase bool) {
	if foldCase {
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].Path) < strings.ToLower(files[j].Path)
		})
		return
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
}
