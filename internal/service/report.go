package service

import (
	"context"
	"fmt"

	"ingest_api/internal/config"
)

type ReportService struct {
	gen   ReportGenerator
	paths config.PathsConfig
}

func NewReportService(gen ReportGenerator, paths config.PathsConfig) *ReportService {
	return &ReportService{gen: gen, paths: paths}
}

// Generate runs the injected generator against the history file and output
// folder. The capability is optional; without it the caller gets
// ErrReportUnavailable, decided here rather than failing late.
func (s *ReportService) Generate(ctx context.Context) (string, error) {
	if s.gen == nil {
		return "", ErrReportUnavailable
	}
	outputFolder, ok := s.paths.OutputFolder()
	if !ok {
		return "", fmt.Errorf("output folder not configured")
	}
	path, err := s.gen.Generate(s.paths.HistoryPath(), outputFolder)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	if path == "" {
		return "", ErrNothingToReport
	}
	return path, nil
}
