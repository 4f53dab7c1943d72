package handlers

import (
	"context"
	"encoding/json"

	"ingest_api/internal/models"
	"ingest_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockStatus struct {
	resp json.RawMessage
	err  error
}

func (m *mockStatus) Get(ctx context.Context) (json.RawMessage, error) {
	return m.resp, m.err
}

type mockHistory struct {
	resp       json.RawMessage
	listErr    error
	clearErr   error
	clearCalls int
}

func (m *mockHistory) List(ctx context.Context) (json.RawMessage, error) {
	return m.resp, m.listErr
}

func (m *mockHistory) Clear(ctx context.Context) error {
	m.clearCalls++
	if m.clearErr == nil {
		m.resp = json.RawMessage("[]")
	}
	return m.clearErr
}

type mockEventLog struct {
	resp       []models.LogEntry
	tailErr    error
	clearErr   error
	clearCalls int
}

func (m *mockEventLog) Tail(ctx context.Context) ([]models.LogEntry, error) {
	if m.tailErr != nil {
		return nil, m.tailErr
	}
	if m.resp == nil {
		return []models.LogEntry{}, nil
	}
	return m.resp, nil
}

func (m *mockEventLog) Clear(ctx context.Context) error {
	m.clearCalls++
	if m.clearErr == nil {
		m.resp = nil
	}
	return m.clearErr
}

type mockFolders struct {
	resp     models.FolderListing
	err      error
	lastName string
}

func (m *mockFolders) List(ctx context.Context, name string) (models.FolderListing, error) {
	m.lastName = name
	return m.resp, m.err
}

type mockReport struct {
	path  string
	err   error
	calls int
}

func (m *mockReport) Generate(ctx context.Context) (string, error) {
	m.calls++
	return m.path, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
