package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ingest_api/internal/models"
)

// ErrNotDirectory marks a configured folder path that exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// FolderFS lists pipeline folders straight off the filesystem. Listings are
// recomputed on every call, never cached.
type FolderFS struct{}

func NewFolderFS() *FolderFS {
	return &FolderFS{}
}

// List returns the regular, non-hidden files of dir with size and UTC
// modification time. A missing path surfaces as fs.ErrNotExist so callers
// can map it separately from listing failures.
func (r *FolderFS) List(ctx context.Context, dir string) ([]models.FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]models.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", filepath.Join(dir, entry.Name()), err)
		}
		files = append(files, models.FileInfo{
			Name:         entry.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().UTC(),
		})
	}
	return files, nil
}
