package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ingest_api/internal/models"
	"ingest_api/internal/repository"
)

type StatusService struct {
	statusRepo repository.StatusRepo
}

func NewStatusService(statusRepo repository.StatusRepo) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

// Get returns the pipeline's snapshot verbatim. An absent status file means
// the pipeline is idle, not an error, so a default snapshot is synthesized.
func (s *StatusService) Get(ctx context.Context) (json.RawMessage, error) {
	data, err := s.statusRepo.Read(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return json.Marshal(models.NewIdleStatus())
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("status file is not valid JSON")
	}
	return data, nil
}
