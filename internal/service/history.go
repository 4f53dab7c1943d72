package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ingest_api/internal/repository"
)

// emptyHistory is what an absent or freshly-cleared history reads as.
var emptyHistory = json.RawMessage("[]")

type HistoryService struct {
	historyRepo repository.HistoryRepo
}

func NewHistoryService(historyRepo repository.HistoryRepo) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// List returns the history array verbatim; an absent file is an empty
// history.
func (s *HistoryService) List(ctx context.Context) (json.RawMessage, error) {
	data, err := s.historyRepo.Read(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return emptyHistory, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("history file is not valid JSON")
	}
	return data, nil
}

// Clear replaces the whole history with an empty array.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.historyRepo.Clear(ctx)
}
