package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ingest_api/internal/models"
	"ingest_api/internal/service"
)

func TestLogsHandler_TailAndClear(t *testing.T) {
	logs := &mockEventLog{resp: []models.LogEntry{
		{Timestamp: "2024-01-15 10:30:00,123", Level: "ERROR", Message: "Failed to process file\nValueError: bad input"},
		{Timestamp: "2024-01-15 10:30:05,000", Level: "INFO", Message: "Next file picked up"},
	}}
	r := newTestRouter(&service.Service{EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d body=%s", w.Code, w.Body.String())
	}
	var entries []models.LogEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal entries: %v", err)
	}
	if len(entries) != 2 || entries[0].Level != "ERROR" || !strings.Contains(entries[0].Message, "\n") {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/logs", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"cleared":true`) {
		t.Fatalf("delete status=%d body=%s", w.Code, w.Body.String())
	}
	if logs.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", logs.clearCalls)
	}

	// GET after DELETE yields [].
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected [] after clear, status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestLogsHandler_EmptyLogIsEmptyArray(t *testing.T) {
	r := newTestRouter(&service.Service{EventLog: &mockEventLog{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected [], status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestLogsHandler_Failures(t *testing.T) {
	r := newTestRouter(&service.Service{EventLog: &mockEventLog{tailErr: errors.New("io boom")}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "Error reading logs:") {
		t.Fatalf("get status=%d body=%s", w.Code, w.Body.String())
	}

	r = newTestRouter(&service.Service{EventLog: &mockEventLog{clearErr: errors.New("busy")}})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/logs", nil))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "Error clearing logs:") {
		t.Fatalf("delete status=%d body=%s", w.Code, w.Body.String())
	}
}
