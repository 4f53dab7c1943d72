package service

import (
	"context"
	"errors"
	"testing"
)

// fakeLogRepo is a minimal stub satisfying repository.LogRepo.
type fakeLogRepo struct {
	lines      []string
	tailErr    error
	clearErr   error
	gotN       int
	clearCalls int
}

func (f *fakeLogRepo) Tail(ctx context.Context, n int) ([]string, error) {
	f.gotN = n
	return f.lines, f.tailErr
}

func (f *fakeLogRepo) Clear(ctx context.Context) error {
	f.clearCalls++
	if f.clearErr == nil {
		f.lines = nil
	}
	return f.clearErr
}

func TestEventLogService_Tail(t *testing.T) {
	t.Parallel()

	repo := &fakeLogRepo{lines: []string{
		"2024-01-15 10:30:00,123 - ERROR - Failed to process file",
		"Traceback (most recent call last):",
		"ValueError: bad input",
		"2024-01-15 10:30:05,000 - INFO - Next file picked up",
	}}
	s := NewEventLogService(repo)

	entries, err := s.Tail(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotN != tailWindow {
		t.Fatalf("expected tail window %d, repo asked for %d", tailWindow, repo.gotN)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Message != "Failed to process file\nTraceback (most recent call last):\nValueError: bad input" {
		t.Fatalf("stack trace not re-attached: %q", entries[0].Message)
	}
	if entries[1].Level != "INFO" {
		t.Fatalf("entries out of file order: %+v", entries)
	}
}

func TestEventLogService_TailAbsentFile(t *testing.T) {
	t.Parallel()

	s := NewEventLogService(&fakeLogRepo{lines: nil})
	entries, err := s.Tail(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestEventLogService_ClearThenTail(t *testing.T) {
	t.Parallel()

	repo := &fakeLogRepo{lines: []string{"2024-01-15 10:30:00,123 - INFO - started"}}
	s := NewEventLogService(repo)

	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := s.Tail(context.Background())
	if err != nil {
		t.Fatalf("tail after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries after clear, got %+v", entries)
	}
}

func TestEventLogService_TailError(t *testing.T) {
	t.Parallel()

	want := errors.New("io boom")
	s := NewEventLogService(&fakeLogRepo{tailErr: want})
	if _, err := s.Tail(context.Background()); !errors.Is(err, want) {
		t.Fatalf("expected tail error, got %v", err)
	}
}
