package repository

import (
	"context"

	"ingest_api/internal/config"
	"ingest_api/internal/models"
)

// StatusRepo reads the pipeline's status snapshot file.
type StatusRepo interface {
	// Read returns the raw file contents, or (nil, nil) when the file does
	// not exist.
	Read(ctx context.Context) ([]byte, error)
}

// HistoryRepo reads and clears the processing history file.
type HistoryRepo interface {
	Read(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

// LogRepo reads the tail of the engine log file and truncates it.
type LogRepo interface {
	// Tail returns the last n raw lines of the log file in file order, or
	// (nil, nil) when the file does not exist.
	Tail(ctx context.Context, n int) ([]string, error)
	Clear(ctx context.Context) error
}

// FolderRepo lists the regular, non-hidden files of a directory.
type FolderRepo interface {
	List(ctx context.Context, dir string) ([]models.FileInfo, error)
}

// Repository aggregates the file-backed repos. All of them operate on files
// owned and written by the external pipeline; no locking is done (the
// pipeline is the single writer, the two clear operations are full rewrites).
type Repository struct {
	Status  StatusRepo
	History HistoryRepo
	Log     LogRepo
	Folder  FolderRepo
}

// NewRepository wires the repos against the configured paths.
func NewRepository(paths config.PathsConfig) *Repository {
	return &Repository{
		Status:  NewStatusFile(paths.StatusPath()),
		History: NewHistoryFile(paths.HistoryPath()),
		Log:     NewLogFile(paths.LogPath()),
		Folder:  NewFolderFS(),
	}
}
