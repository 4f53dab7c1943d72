package service

import (
	"context"

	"ingest_api/internal/models"
	"ingest_api/internal/repository"
)

// tailWindow is the number of raw lines read from the end of the log file.
// Reconstruction runs on this window, so a multi-line entry whose header
// falls just before the cutoff is truncated or lost. Kept for compatibility
// with the dashboard's existing expectations.
const tailWindow = 100

type EventLogService struct {
	logRepo repository.LogRepo
}

func NewEventLogService(logRepo repository.LogRepo) *EventLogService {
	return &EventLogService{logRepo: logRepo}
}

// Tail returns the entries reconstructed from the last lines of the engine
// log, oldest first. An absent log file is an empty log.
func (s *EventLogService) Tail(ctx context.Context) ([]models.LogEntry, error) {
	lines, err := s.logRepo.Tail(ctx, tailWindow)
	if err != nil {
		return nil, err
	}
	return reconstructEntries(lines), nil
}

// Clear truncates the log file.
func (s *EventLogService) Clear(ctx context.Context) error {
	return s.logRepo.Clear(ctx)
}
