// Package index builds and serves the search index for a content tree:
// file metadata, the hierarchical tree shape consumed by the map, and
// portfolio statistics.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/fttower/orbit/internal/model"
)

// File is one indexed file. Content holds a preview of the first
// PreviewSize bytes, not the full body.
type File struct {
	Name      string   `json:"name"`
	Path      string   `json:"path"`
	FullPath  string   `json:"full_path"`
	Title     string   `json:"title"`
	Headers   []string `json:"headers"`
	Keywords  []string `json:"keywords"`
	Content   string   `json:"content"`
	Size      int64    `json:"size"`
	Type      string   `json:"type"`
	GithubURL string   `json:"github_url"`
}

// Index is the persisted index document
type Index struct {
	Files []File      `json:"files"`
	Tree  *model.Node `json:"tree"`
}

// Stats summarizes the indexed portfolio
type Stats struct {
	TotalFiles     int   `json:"total_files"`
	TotalFolders   int   `json:"total_folders"`
	TotalSize      int64 `json:"total_size"`
	TotalProtocols int   `json:"total_protocols"`
}

// Load reads an index file from disk
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}
	return &idx, nil
}

// Save writes the index to disk, creating parent directories as needed
func (idx *Index) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// Detail returns the full entry for a file path, or an error if the
// path is not indexed.
func (idx *Index) Detail(path string) (*File, error) {
	for i := range idx.Files {
		if idx.Files[i].Path == path {
			return &idx.Files[i], nil
		}
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// Stats computes portfolio statistics. Size is the sum of the stored
// preview lengths; protocols are the distinct first path elements under
// the Protocols folder.
func (idx *Index) Stats() Stats {
	stats := Stats{TotalFiles: len(idx.Files)}

	protocols := make(map[string]struct{})
	for _, f := range idx.Files {
		stats.TotalSize += int64(len(f.Content))
		if rest, ok := strings.CutPrefix(f.Path, "Protocols"+model.PathSeparator); ok {
			protocol, _, _ := strings.Cut(rest, model.PathSeparator)
			if protocol != "" {
				protocols[protocol] = struct{}{}
			}
		}
	}
	stats.TotalProtocols = len(protocols)

	if idx.Tree != nil {
		idx.Tree.Walk(func(n *model.Node) {
			if n != idx.Tree && n.IsFolder() {
				stats.TotalFolders++
			}
		})
	}

	return stats
}
