package models

// Log levels emitted by the ingest engine's log file.
const (
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// LogEntry is one reconstructed entry from the engine log. Message may span
// several source lines (stack traces) joined with "\n".
type LogEntry struct {
	Timestamp string `json:"timestamp"` // as written: "2006-01-02 15:04:05,000"
	Level     string `json:"level"`     // INFO | WARNING | ERROR
	Message   string `json:"message"`
}
