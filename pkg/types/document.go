// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is the ordered form of a grouped index: directory sections in
// ascending lexical order, year groups in ascending numeric order with
// NoYear last, and files sorted by path within each group. Both renderers
// and the manifest export consume this structure; none of them re-sort.
type Document struct {
	// Directories holds one section per top-level directory.
	Directories []DirectorySection `json:"directories" yaml:"directories"`

	// TotalFiles is the number of files across all sections.
	TotalFiles int `json:"total_files" yaml:"total_files"`
}

// DirectorySection groups the files under one top-level directory.
type DirectorySection struct {
	// Name is the top-level directory name (first path segment).
	Name string `json:"name" yaml:"name"`

	// Years holds the year groups present for this directory.
	Years []YearGroup `json:"years" yaml:"years"`
}

// YearGroup holds the files of one (directory, year) bucket.
type YearGroup struct {
	// Year is the group key; NoYear for files without a year folder.
	Year Year `json:"year" yaml:"year"`

	// Label is the display heading ("2013" or "No Year Folder").
	Label string `json:"label" yaml:"label"`

	// Files are the entries of the bucket, sorted by path.
	Files []FileEntry `json:"files" yaml:"files"`
}
