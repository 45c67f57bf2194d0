// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates files under a local directory tree.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Result holds the entries found by a walk plus the count of files
// skipped by the exclusion filter.
type Result struct {
	Entries  []types.FileEntry
	Excluded int
}

// NormalizeExtensions lowercases extensions and ensures a leading dot,
// so "--ext pdf" and "--ext .PDF" both filter the same way.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// Walk recursively enumerates regular files under cfg.Root. Relative
// paths are computed against the root and normalized to forward-slash
// form. When cfg.Extensions is non-empty only matching files are
// returned; files under a folder named cfg.ExcludeFolder are counted and
// skipped. A missing or non-directory root is an error before any walk.
func Walk(cfg types.ScanConfig) (Result, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return Result{}, fmt.Errorf("directory not found: %s", cfg.Root)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("not a directory: %s", cfg.Root)
	}

	allowed := make(map[string]bool, len(cfg.Extensions))
	for _, e := range NormalizeExtensions(cfg.Extensions) {
		allowed[e] = true
	}

	var result Result
	err = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(cfg.Root, p)
		if err != nil {
			return fmt.Errorf("computing relative path for %s: %w", p, err)
		}
		relSlash := filepath.ToSlash(rel)

		if cfg.ExcludeFolder != "" && hasSegment(relSlash, cfg.ExcludeFolder) {
			result.Excluded++
			return nil
		}

		name := d.Name()
		if len(allowed) > 0 && !allowed[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		result.Entries = append(result.Entries, types.FileEntry{
			Path: relSlash,
			Name: name,
			Year: index.YearFromPath(relSlash),
		})
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("walking %s: %w", cfg.Root, err)
	}
	return result, nil
}

// hasSegment reports whether any directory segment of path equals name.
// The final segment is the filename and is not considered.
func hasSegment(path, name string) bool {
	segments := strings.Split(path, "/")
	for _, seg := range segments[:len(segments)-1] {
		if seg == name {
			return true
		}
	}
	return false
}
