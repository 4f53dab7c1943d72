package service

import (
	"context"
	"encoding/json"

	"ingest_api/internal/config"
	"ingest_api/internal/models"
	"ingest_api/internal/repository"
)

// Status exposes the pipeline's current snapshot as opaque JSON.
type Status interface {
	Get(ctx context.Context) (json.RawMessage, error)
}

// History exposes the processing history (pass-through) and its clear
// operation.
type History interface {
	List(ctx context.Context) (json.RawMessage, error)
	Clear(ctx context.Context) error
}

// EventLog exposes reconstructed log entries from the engine log file.
type EventLog interface {
	Tail(ctx context.Context) ([]models.LogEntry, error)
	Clear(ctx context.Context) error
}

// Folders exposes per-request listings of the pipeline folders.
type Folders interface {
	List(ctx context.Context, name string) (models.FolderListing, error)
}

// Report triggers on-demand report generation.
type Report interface {
	Generate(ctx context.Context) (string, error)
}

// ReportGenerator is the injected report capability. Implementations return
// the generated artifact path, or "" when there is nothing to report.
type ReportGenerator interface {
	Generate(historyPath, outputFolder string) (string, error)
}

// Service aggregates all sub-services.
type Service struct {
	Status
	History
	EventLog
	Folders
	Report
}

// NewService wires the repository layer into concrete services. gen may be
// nil, in which case report generation answers as unavailable.
func NewService(repos *repository.Repository, paths config.PathsConfig, gen ReportGenerator) *Service {
	return &Service{
		Status:   NewStatusService(repos.Status),
		History:  NewHistoryService(repos.History),
		EventLog: NewEventLogService(repos.Log),
		Folders:  NewFolderService(repos.Folder, paths),
		Report:   NewReportService(gen, paths),
	}
}
