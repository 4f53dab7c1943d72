package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPDFGenerator_NothingToReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gen := NewPDFGenerator()

	// Absent history.
	path, err := gen.Generate(filepath.Join(dir, "missing.json"), dir)
	if err != nil || path != "" {
		t.Fatalf("absent history: path=%q err=%v", path, err)
	}

	// Empty history array.
	histPath := filepath.Join(dir, "history.json")
	if err := os.WriteFile(histPath, []byte("[]"), 0o644); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	path, err = gen.Generate(histPath, dir)
	if err != nil || path != "" {
		t.Fatalf("empty history: path=%q err=%v", path, err)
	}
}

func TestPDFGenerator_WritesReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	histPath := filepath.Join(dir, "history.json")
	history := `[
		{"file":"a.csv","status":"done","timestamp":"2024-01-15 10:30:00"},
		{"filename":"b.csv","result":"error","completed_at":"2024-01-15 11:00:00"}
	]`
	if err := os.WriteFile(histPath, []byte(history), 0o644); err != nil {
		t.Fatalf("seed history: %v", err)
	}

	outDir := filepath.Join(dir, "output") // does not exist yet
	path, err := NewPDFGenerator().Generate(histPath, outDir)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "ingest_report_") || !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("unexpected artifact name: %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat artifact: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("artifact is empty")
	}
}

func TestPDFGenerator_MalformedHistory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	histPath := filepath.Join(dir, "history.json")
	if err := os.WriteFile(histPath, []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	if _, err := NewPDFGenerator().Generate(histPath, dir); err == nil {
		t.Fatal("expected error for malformed history")
	}
}
