package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirPublisher writes exported files under a local root directory.
type DirPublisher struct {
	root string
}

// NewDirPublisher creates a publisher rooted at dir.
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{root: dir}
}

// Publish implements Publisher.
func (d *DirPublisher) Publish(_ context.Context, key, _ string, body []byte) error {
	path := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: mkdir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", key, err)
	}
	return nil
}
