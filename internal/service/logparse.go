package service

import (
	"regexp"
	"strings"

	"ingest_api/internal/models"
)

// logHeaderPattern matches the first line of an entry as the engine's logger
// writes it: "2024-01-15 10:30:00,123 - ERROR - message".
var logHeaderPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}) - (INFO|WARNING|ERROR) - (.*)$`,
)

// reconstructEntries turns raw log lines into structured entries. A matching
// line starts a new entry; any non-matching, non-blank line is a
// continuation (stack trace output) and is re-attached to the most recent
// entry with a newline. Continuations with no preceding entry and blank
// lines are dropped. Output preserves file order.
func reconstructEntries(lines []string) []models.LogEntry {
	entries := make([]models.LogEntry, 0, len(lines))
	for _, line := range lines {
		if m := logHeaderPattern.FindStringSubmatch(line); m != nil {
			entries = append(entries, models.LogEntry{
				Timestamp: m[1],
				Level:     m[2],
				Message:   strings.TrimSpace(m[3]),
			})
			continue
		}
		cont := strings.TrimSpace(line)
		if cont == "" || len(entries) == 0 {
			continue
		}
		entries[len(entries)-1].Message += "\n" + cont
	}
	return entries
}
