package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "archive-index/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HubConfig holds settings for the hosted dataset listing.
type HubConfig struct {
	HTTPConfig `yaml:",inline"`

	// RepoID is the dataset repository identifier (e.g. "org/archive").
	RepoID string `json:"repo_id" yaml:"repo_id"`

	// Suffix filters listed files by filename suffix, case-insensitive
	// (default ".pdf").
	Suffix string `json:"suffix" yaml:"suffix"`

	// Token is an optional access token for private datasets.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// ScanConfig holds settings for the local filesystem scan.
type ScanConfig struct {
	// Root is the directory to scan.
	Root string `json:"root" yaml:"root"`

	// Extensions is an optional allow-list of file extensions. Entries are
	// normalized to a lowercase leading-dot form (".pdf").
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// ExcludeFolder skips any file whose path contains a folder segment
	// with this exact name (e.g. ".files").
	ExcludeFolder string `json:"exclude_folder,omitempty" yaml:"exclude_folder,omitempty"`
}

// InventoryConfig holds settings for the Markdown inventory output.
type InventoryConfig struct {
	// Title is the top-level heading of the inventory document.
	Title string `json:"title" yaml:"title"`

	// Output is the inventory file path (default "INVENTORY.md").
	Output string `json:"output" yaml:"output"`
}

// SiteConfig holds settings for the HTML index output.
type SiteConfig struct {
	// Template is the path of the HTML page template. The template must
	// contain the total-count and content placeholder markers.
	Template string `json:"template" yaml:"template"`

	// Output is the generated page path (default "index_local.html").
	Output string `json:"output" yaml:"output"`
}

// CatalogConfig holds settings for the SQLite catalog artifact.
type CatalogConfig struct {
	// Path is the database file path (default "catalog.db").
	Path string `json:"path" yaml:"path"`
}

// ServeConfig holds settings for the preview HTTP server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// SiteDir is the directory holding the generated index page.
	SiteDir string `json:"site_dir" yaml:"site_dir"`

	// ArchiveDir optionally mounts the archive tree so relative PDF links
	// in the index resolve locally. Empty disables the mount.
	ArchiveDir string `json:"archive_dir,omitempty" yaml:"archive_dir,omitempty"`

	// Index is the page served at "/" (default "index_local.html").
	Index string `json:"index" yaml:"index"`
}

// ToolConfig groups all stage configurations.
type ToolConfig struct {
	Hub       HubConfig       `json:"hub" yaml:"hub"`
	Scan      ScanConfig      `json:"scan" yaml:"scan"`
	Inventory InventoryConfig `json:"inventory" yaml:"inventory"`
	Site      SiteConfig      `json:"site" yaml:"site"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Serve     ServeConfig     `json:"serve" yaml:"serve"`
}
