// Package report renders a PDF summary of the pipeline's processing history.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDFGenerator implements service.ReportGenerator. History entries are
// opaque JSON objects, so only a few well-known keys are surfaced per line.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// Generate renders the history file into outputFolder and returns the PDF
// path. An absent or empty history yields "" (nothing to report), not an
// error.
func (g *PDFGenerator) Generate(historyPath, outputFolder string) (string, error) {
	data, err := os.ReadFile(historyPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read history %q: %w", historyPath, err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("parse history %q: %w", historyPath, err)
	}
	if len(entries) == 0 {
		return "", nil
	}

	now := time.Now().UTC()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Ingest Engine Processing Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s | %d jobs", now.Format(time.RFC3339), len(entries)))
	pdf.Ln(10)

	for _, entry := range entries {
		line := fmt.Sprintf("%-22s  %-10s  %s",
			stringField(entry, "timestamp", "completed_at", "finished_at"),
			stringField(entry, "status", "result"),
			stringField(entry, "file", "filename", "name"),
		)
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	if err := os.MkdirAll(outputFolder, 0o755); err != nil {
		return "", fmt.Errorf("create output folder %q: %w", outputFolder, err)
	}
	out := filepath.Join(outputFolder, fmt.Sprintf("ingest_report_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("write report %q: %w", out, err)
	}
	return out, nil
}

// stringField returns the first present key rendered as a string, or "-".
func stringField(entry map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := entry[k]; ok && v != nil {
			return fmt.Sprintf("%v", v)
		}
	}
	return "-"
}
