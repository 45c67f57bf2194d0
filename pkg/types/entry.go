// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// Year is a four-digit year extracted from a path segment, or NoYear when
// no segment carries one. NoYear sorts after all numeric years.
type Year int

// NoYear is the sentinel for files whose path contains no year folder.
const NoYear Year = 0

// Known reports whether y holds an actual year rather than the sentinel.
func (y Year) Known() bool { return y != NoYear }

// String returns the numeric year, or "No Year Folder" for the sentinel.
// Both renderers use this as the group heading.
func (y Year) String() string {
	if y == NoYear {
		return "No Year Folder"
	}
	return strconv.Itoa(int(y))
}

// FileEntry describes one file found by a source. Path is relative to the
// scan root (or the dataset root) in forward-slash form. Entries are
// immutable once constructed.
type FileEntry struct {
	// Path is the relative, forward-slash path to the file.
	Path string `json:"path" yaml:"path"`

	// Name is the base filename.
	Name string `json:"name" yaml:"name"`

	// Year is the first year folder on the path, or NoYear.
	Year Year `json:"year" yaml:"year"`
}
