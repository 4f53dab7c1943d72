package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// StatusFile reads the snapshot file the pipeline overwrites on every state
// change.
type StatusFile struct {
	path string
}

func NewStatusFile(path string) *StatusFile {
	return &StatusFile{path: path}
}

// Read returns the raw snapshot bytes. A missing file is not an error: the
// pipeline simply has not started a job yet.
func (r *StatusFile) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status file %q: %w", r.path, err)
	}
	return data, nil
}
