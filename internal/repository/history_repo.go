package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
)

const historyFileMode = 0o644

// HistoryFile reads and clears the append-only processing history.
type HistoryFile struct {
	path string
}

func NewHistoryFile(path string) *HistoryFile {
	return &HistoryFile{path: path}
}

// Read returns the raw history bytes, or (nil, nil) when no history exists.
func (r *HistoryFile) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file %q: %w", r.path, err)
	}
	return data, nil
}

// Clear replaces the whole history with an empty JSON array. Individual
// entries are never edited.
func (r *HistoryFile) Clear(ctx context.Context) error {
	if err := os.WriteFile(r.path, []byte("[]"), historyFileMode); err != nil {
		return fmt.Errorf("clear history file %q: %w", r.path, err)
	}
	return nil
}
