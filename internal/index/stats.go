// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Count is one row of a distribution table.
type Count struct {
	Key   string
	Files int
}

// Report holds file-count distributions over a set of entries.
type Report struct {
	Total       int
	Directories []Count
	Years       []Count
	Extensions  []Count
}

// BuildReport computes per-directory, per-year, and per-extension counts.
// Directory and extension rows are sorted by key; year rows ascend
// numerically with the no-year bucket last.
func BuildReport(entries []types.FileEntry) Report {
	dirs := make(map[string]int)
	years := make(map[types.Year]int)
	exts := make(map[string]int)

	for _, e := range entries {
		dirs[TopLevelDir(e.Path)]++
		years[e.Year]++
		ext := strings.ToLower(path.Ext(e.Name))
		if ext == "" {
			ext = "(none)"
		}
		exts[ext]++
	}

	r := Report{Total: len(entries)}
	r.Directories = sortedCounts(dirs)
	r.Extensions = sortedCounts(exts)

	yearKeys := make([]types.Year, 0, len(years))
	hasNoYear := false
	for y := range years {
		if y == types.NoYear {
			hasNoYear = true
			continue
		}
		yearKeys = append(yearKeys, y)
	}
	sort.Slice(yearKeys, func(i, j int) bool { return yearKeys[i] < yearKeys[j] })
	if hasNoYear {
		yearKeys = append(yearKeys, types.NoYear)
	}
	for _, y := range yearKeys {
		r.Years = append(r.Years, Count{Key: y.String(), Files: years[y]})
	}

	return r
}

func sortedCounts(m map[string]int) []Count {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	counts := make([]Count, len(keys))
	for i, k := range keys {
		counts[i] = Count{Key: k, Files: m[k]}
	}
	return counts
}

// FormatReport writes the distribution tables to w.
func FormatReport(r Report, w io.Writer) {
	if r.Total == 0 {
		fmt.Fprintln(w, "No files found.")
		return
	}

	writeTable(w, "Directory", r.Directories)
	writeTable(w, "Year", r.Years)
	writeTable(w, "Extension", r.Extensions)
	fmt.Fprintf(w, "%d files total\n", r.Total)
}

func writeTable(w io.Writer, header string, counts []Count) {
	fmt.Fprintf(w, "%-40s  %s\n", header, "Files")
	fmt.Fprintln(w, strings.Repeat("-", 47))
	for _, c := range counts {
		key := c.Key
		if len(key) > 40 {
			key = key[:37] + "..."
		}
		fmt.Fprintf(w, "%-40s  %d\n", key, c.Files)
	}
	fmt.Fprintln(w)
}
