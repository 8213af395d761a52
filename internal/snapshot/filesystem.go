package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Filesystem stores each snapshot as a JSON file under a base directory.
// This is the default backend and the closest analogue of the dashboard's
// browser-local storage.
type Filesystem struct {
	baseDir string
}

// NewFilesystem ensures the base directory exists and returns a handle.
func NewFilesystem(baseDir string) (*Filesystem, error) {
	if baseDir == "" {
		baseDir = "./snapshots"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &Filesystem{baseDir: baseDir}, nil
}

// Save writes the payload to <baseDir>/<key>.json atomically via a rename.
func (f *Filesystem) Save(ctx context.Context, key string, data []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the payload for the key, ErrNotFound when no file exists.
func (f *Filesystem) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot %s: %w", key, err)
	}
	return data, nil
}

func (f *Filesystem) path(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}
