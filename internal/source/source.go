// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source defines file-listing providers and the ordered fallback
// chain that tries them until one yields files.
package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yukioitsuki/archive-index/internal/hub"
	"github.com/yukioitsuki/archive-index/internal/scan"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

// Provider lists files from one source of truth.
type Provider interface {
	Name() string
	List(ctx context.Context) ([]types.FileEntry, error)
}

// First tries providers in order and returns the entries of the first one
// that succeeds with a non-empty result, along with its name. A provider
// error or empty result moves to the next provider with a warning on w.
// When all providers are exhausted, First returns an error naming the
// sources tried.
func First(ctx context.Context, providers []Provider, w io.Writer) ([]types.FileEntry, string, error) {
	if len(providers) == 0 {
		return nil, "", fmt.Errorf("no file sources configured")
	}

	tried := make([]string, 0, len(providers))
	for _, p := range providers {
		tried = append(tried, p.Name())

		entries, err := p.List(ctx)
		if err != nil {
			fmt.Fprintf(w, "warning: source %s failed: %v\n", p.Name(), err)
			continue
		}
		if len(entries) == 0 {
			fmt.Fprintf(w, "warning: source %s returned no files\n", p.Name())
			continue
		}
		return entries, p.Name(), nil
	}

	return nil, "", fmt.Errorf("no files found from any source (tried: %s)", strings.Join(tried, ", "))
}

// HubProvider lists files from the hosted dataset.
type HubProvider struct {
	Client *hub.Client
}

// Name returns the provider identifier.
func (p *HubProvider) Name() string { return "huggingface" }

// List fetches the dataset listing and returns suffix-filtered entries.
func (p *HubProvider) List(ctx context.Context) ([]types.FileEntry, error) {
	return p.Client.Entries(ctx)
}

// LocalProvider lists files from a local directory walk.
type LocalProvider struct {
	Cfg types.ScanConfig

	// Report receives the found/excluded summary line. Nil discards it.
	Report io.Writer
}

// Name returns the provider identifier.
func (p *LocalProvider) Name() string { return "local" }

// List walks the configured root.
func (p *LocalProvider) List(ctx context.Context) ([]types.FileEntry, error) {
	result, err := scan.Walk(p.Cfg)
	if err != nil {
		return nil, err
	}
	if p.Report != nil {
		fmt.Fprintf(p.Report, "found %d local files (%d excluded)\n", len(result.Entries), result.Excluded)
	}
	return result.Entries, nil
}
