package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
)

// maxLogLineBytes bounds a single scanned line. Stack traces can carry long
// lines but anything past 1 MB is pathological.
const maxLogLineBytes = 1 << 20

// LogFile reads the tail of the engine log and truncates it on clear.
type LogFile struct {
	path string
}

func NewLogFile(path string) *LogFile {
	return &LogFile{path: path}
}

// Tail reads the whole file and returns the last n raw lines in file order.
// A missing file yields (nil, nil).
func (r *LogFile) Tail(ctx context.Context, n int) ([]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLogLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log file %q: %w", r.path, err)
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Clear truncates the log file to zero length, creating it when absent. The
// pipeline appends through its own handle, so truncation is safe while it
// runs.
func (r *LogFile) Clear(ctx context.Context) error {
	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("truncate log file %q: %w", r.path, err)
	}
	return f.Close()
}
