// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hub lists the files of a hosted Hugging Face dataset and builds
// download URLs for them. One listing call returns every file path in the
// dataset; there is no pagination.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/yukioitsuki/archive-index/internal/httputil"
	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Base URLs for the Hub API and file resolution. Declared as vars so
// tests can substitute httptest servers.
var (
	apiBase      = "https://huggingface.co/api/datasets/"
	downloadBase = "https://huggingface.co/datasets/"
)

// Client queries the dataset listing endpoint. Construct one per
// invocation and pass it in; there is no package-level client.
type Client struct {
	HTTP *http.Client
	Cfg  types.HubConfig
}

// datasetInfo is the subset of the dataset info response we consume.
type datasetInfo struct {
	Siblings []sibling `json:"siblings"`
}

type sibling struct {
	Rfilename string `json:"rfilename"`
}

// ListFiles returns every file path in the dataset, in listing order.
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	reqURL := apiBase + c.Cfg.RepoID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Cfg.UserAgent)
	if c.Cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Cfg.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("dataset listing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset listing returned HTTP %d for %s", resp.StatusCode, c.Cfg.RepoID)
	}

	var info datasetInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("parsing dataset listing: %w", err)
	}

	files := make([]string, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		if s.Rfilename != "" {
			files = append(files, s.Rfilename)
		}
	}
	return files, nil
}

// Entries lists the dataset and returns entries for files matching the
// configured suffix (case-insensitive). Name and year are derived from
// the path the same way the local scan derives them.
func (c *Client) Entries(ctx context.Context) ([]types.FileEntry, error) {
	files, err := c.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	suffix := strings.ToLower(c.Cfg.Suffix)
	var entries []types.FileEntry
	for _, f := range files {
		if suffix != "" && !strings.HasSuffix(strings.ToLower(f), suffix) {
			continue
		}
		entries = append(entries, types.FileEntry{
			Path: f,
			Name: path.Base(f),
			Year: index.YearFromPath(f),
		})
	}
	return entries, nil
}

// DownloadURL returns the fixed resolve URL for a dataset file:
// https://huggingface.co/datasets/<repo-id>/resolve/main/<path>.
func (c *Client) DownloadURL(filePath string) string {
	return downloadBase + c.Cfg.RepoID + "/resolve/main/" + filePath
}
