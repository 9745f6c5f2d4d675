package storage

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a file under a base directory. Key names are
// sanitized so storage keys with separators map to flat file names.
type FileStore struct {
	dir string
}

// NewFileStore ensures the base directory exists and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return data, true, nil
}

func (f *FileStore) Save(ctx context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("stat storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %q is not a directory", f.dir)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return -1
		}
	}, key)
	if safe != key {
		// Disambiguate collisions between sanitized keys.
		suffix := hex.EncodeToString([]byte(key))
		if len(suffix) > 12 {
			suffix = suffix[:12]
		}
		safe = safe + "-" + suffix
	}
	return filepath.Join(f.dir, safe+".json")
}
