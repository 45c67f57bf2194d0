// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Grouped is the two-level index: top-level directory → year → entries.
// Group places every entry in exactly one bucket and does not sort;
// ordering is established by BuildDocument.
type Grouped map[string]map[types.Year][]types.FileEntry

// TopLevelDir returns the first segment of a forward-slash path. A path
// with no separator is its own top-level directory, matching the behavior
// for files sitting directly under the scan root.
func TopLevelDir(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// Group partitions entries into (top-level directory, year) buckets,
// creating buckets on first use.
func Group(entries []types.FileEntry) Grouped {
	g := make(Grouped)
	for _, e := range entries {
		top := TopLevelDir(e.Path)
		byYear, ok := g[top]
		if !ok {
			byYear = make(map[types.Year][]types.FileEntry)
			g[top] = byYear
		}
		byYear[e.Year] = append(byYear[e.Year], e)
	}
	return g
}
