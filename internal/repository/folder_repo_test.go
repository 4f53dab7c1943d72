package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFolderFS_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "aaaa")
	writeFile(t, filepath.Join(dir, "b.csv"), "bb")
	writeFile(t, filepath.Join(dir, ".hidden"), "secret")
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := NewFolderFS().List(context.Background(), dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 visible regular files, got %d: %+v", len(files), files)
	}
	byName := map[string]int64{}
	for _, f := range files {
		byName[f.Name] = f.Size
		if f.ModifiedTime.Location() != time.UTC {
			t.Fatalf("modified time not UTC for %s: %v", f.Name, f.ModifiedTime)
		}
		if time.Since(f.ModifiedTime) > time.Minute {
			t.Fatalf("stale modified time for %s: %v", f.Name, f.ModifiedTime)
		}
	}
	if byName["a.csv"] != 4 || byName["b.csv"] != 2 {
		t.Fatalf("unexpected sizes: %v", byName)
	}
}

func TestFolderFS_ListErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := NewFolderFS().List(context.Background(), filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("plain file instead of directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "file.txt")
		writeFile(t, path, "x")
		_, err := NewFolderFS().List(context.Background(), path)
		if !errors.Is(err, ErrNotDirectory) {
			t.Fatalf("expected ErrNotDirectory, got %v", err)
		}
	})

	t.Run("empty directory lists as empty", func(t *testing.T) {
		t.Parallel()
		files, err := NewFolderFS().List(context.Background(), t.TempDir())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if files == nil || len(files) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", files)
		}
	})
}
