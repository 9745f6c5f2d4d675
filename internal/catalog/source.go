package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Source supplies catalog snapshots. The storefront treats each snapshot as
// already-fetched data with no freshness guarantee.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// FileSource reads the catalog feed from a JSON file on disk.
type FileSource struct {
	path string
}

// NewFileSource validates the path and returns the source.
func NewFileSource(path string) (*FileSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog feed path required")
	}
	return &FileSource{path: path}, nil
}

func (f *FileSource) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog feed: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse catalog feed: %w", err)
	}
	return &snap, nil
}
