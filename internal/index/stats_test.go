// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"strings"
	"testing"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

func TestBuildReport(t *testing.T) {
	entries := []types.FileEntry{
		entry("A/2010/x.pdf"),
		entry("A/2012/y.PDF"),
		entry("B/z.pdf"),
		entry("B/notes.txt"),
		entry("B/README"),
	}

	r := BuildReport(entries)

	if r.Total != 5 {
		t.Fatalf("Total = %d, want 5", r.Total)
	}

	wantDirs := []Count{{"A", 2}, {"B", 3}}
	if len(r.Directories) != len(wantDirs) {
		t.Fatalf("Directories = %+v", r.Directories)
	}
	for i, w := range wantDirs {
		if r.Directories[i] != w {
			t.Errorf("Directories[%d] = %+v, want %+v", i, r.Directories[i], w)
		}
	}

	// Years ascend with the no-year bucket last.
	wantYears := []Count{{"2010", 1}, {"2012", 1}, {"No Year Folder", 3}}
	for i, w := range wantYears {
		if r.Years[i] != w {
			t.Errorf("Years[%d] = %+v, want %+v", i, r.Years[i], w)
		}
	}

	// Extensions are lowercased; extensionless files land in "(none)".
	wantExts := []Count{{"(none)", 1}, {".pdf", 3}, {".txt", 1}}
	for i, w := range wantExts {
		if r.Extensions[i] != w {
			t.Errorf("Extensions[%d] = %+v, want %+v", i, r.Extensions[i], w)
		}
	}
}

func TestFormatReport(t *testing.T) {
	r := BuildReport([]types.FileEntry{entry("A/2010/x.pdf")})

	var b strings.Builder
	FormatReport(r, &b)
	out := b.String()

	for _, want := range []string{"Directory", "Year", "Extension", "2010", ".pdf", "1 files total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatReportEmpty(t *testing.T) {
	var b strings.Builder
	FormatReport(BuildReport(nil), &b)
	if !strings.Contains(b.String(), "No files found.") {
		t.Errorf("empty report output = %q", b.String())
	}
}
