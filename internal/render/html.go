// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"os"
	"strconv"
	"strings"

	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Template placeholder markers. The page template must contain both.
const (
	TotalMarker   = "{TOTAL_FILES}"
	ContentMarker = "<!-- INJECTED_CONTENT -->"
)

// LinkFunc maps an entry to its hyperlink target. The returned string
// must already be percent-encoded; the fragment template inserts it into
// the href attribute unchanged.
type LinkFunc func(types.FileEntry) string

// LocalLink returns a relative link to the entry's path, for indexes
// browsed next to the archive tree.
func LocalLink(e types.FileEntry) string {
	return Quote(e.Path, "/")
}

var fragmentTmpl = template.Must(template.New("fragment").Parse(`{{range .}}<div class="directory collapsed">
  <div class="dir-header">{{.Name}}<span class="arrow"></span></div>
  <div class="content">
{{range .Years}}    <div class="year collapsed">
      <div class="year-header">{{.Label}} <span class="count">({{.Count}} PDFs)</span><span class="arrow"></span></div>
      <div class="content">
        <div class="table-wrapper"><table><thead><tr><th>Document</th><th>Path</th></tr></thead><tbody>
{{range .Rows}}          <tr><td><a href="{{.Href}}" target="_blank">{{.Name}}</a></td><td><code>{{.Path}}</code></td></tr>
{{end}}        </tbody></table></div>
      </div></div>
{{end}}  </div></div>
{{end}}`))

// View model for the fragment template. Names and paths pass through
// html/template and are entity-escaped on serialization.
type htmlDir struct {
	Name  string
	Years []htmlYear
}

type htmlYear struct {
	Label string
	Count int
	Rows  []htmlRow
}

type htmlRow struct {
	Href template.URL
	Name string
	Path string
}

// HTMLFragment serializes the document as nested collapsible sections:
// one directory block per section, one year block per group with a file
// count badge and a two-column table. Hyperlink targets come from link.
// An empty document yields an empty fragment.
func HTMLFragment(doc types.Document, link LinkFunc) (string, error) {
	dirs := make([]htmlDir, 0, len(doc.Directories))
	for _, section := range doc.Directories {
		d := htmlDir{Name: section.Name}
		for _, yg := range section.Years {
			y := htmlYear{Label: yg.Label, Count: len(yg.Files)}
			for _, f := range yg.Files {
				y.Rows = append(y.Rows, htmlRow{
					Href: template.URL(link(f)),
					Name: strings.ReplaceAll(f.Name, "|", "Vertical Bar"),
					Path: f.Path,
				})
			}
			d.Years = append(d.Years, y)
		}
		dirs = append(dirs, d)
	}

	var b strings.Builder
	if err := fragmentTmpl.Execute(&b, dirs); err != nil {
		return "", fmt.Errorf("rendering HTML fragment: %w", err)
	}
	return b.String(), nil
}

// Page reads the page template from templatePath and substitutes the
// total-count and content markers. A missing template file is a terminal
// error; no partial page is produced.
func Page(templatePath, fragment string, totalFiles int) (string, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("template file not found: %s", templatePath)
		}
		return "", fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	page := string(data)
	for _, marker := range []string{TotalMarker, ContentMarker} {
		if !strings.Contains(page, marker) {
			return "", fmt.Errorf("template %s is missing the %s marker", templatePath, marker)
		}
	}

	page = strings.ReplaceAll(page, TotalMarker, strconv.Itoa(totalFiles))
	page = strings.ReplaceAll(page, ContentMarker, fragment)
	return page, nil
}
