// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index derives grouping keys from file paths and turns a flat
// list of file entries into the ordered document both renderers consume.
package index

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// yearPattern matches a four-digit year between 1900 and 2099 as a
// standalone token within a path segment.
var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// YearFromSegments scans path segments from root to leaf and returns the
// first year found. First match wins; later segments are not consulted.
// Segments without a year yield types.NoYear.
func YearFromSegments(segments []string) types.Year {
	for _, seg := range segments {
		if m := yearPattern.FindString(seg); m != "" {
			n, _ := strconv.Atoi(m)
			return types.Year(n)
		}
	}
	return types.NoYear
}

// YearFromPath splits a forward-slash path and applies YearFromSegments.
func YearFromPath(path string) types.Year {
	return YearFromSegments(strings.Split(path, "/"))
}
