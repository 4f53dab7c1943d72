package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// logFileName is the file the pipeline's logger writes into the logs folder.
const logFileName = "ingest_engine.log"

// ServerConfig holds the HTTP bind settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// ReportConfig toggles the built-in PDF report generator.
type ReportConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// PathsConfig maps logical resource names to filesystem paths. Values may be
// relative (joined onto BaseDir) or ~-prefixed (expanded against the user
// home). An empty folder value means the folder is not configured.
type PathsConfig struct {
	BaseDir     string `mapstructure:"base_dir"`
	StatusFile  string `mapstructure:"status_file"`
	HistoryFile string `mapstructure:"history_file"`
	Logs        string `mapstructure:"logs"`
	Watch       string `mapstructure:"watch"`
	Processing  string `mapstructure:"processing"`
	Processed   string `mapstructure:"processed"`
	Output      string `mapstructure:"output"`
	Error       string `mapstructure:"error"`
}

// Config is the immutable process configuration, loaded once at startup and
// passed down to every component.
type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	Report   ReportConfig `mapstructure:"report"`
	Paths    PathsConfig  `mapstructure:"paths"`
	LogLevel string       `mapstructure:"log_level"`
}

// Load reads configs/config.yml and unmarshals it.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("paths.base_dir", ".")
	v.SetDefault("paths.status_file", "status.json")
	v.SetDefault("paths.history_file", "history.json")
	v.SetDefault("paths.logs", "logs")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// StatusPath returns the resolved path of the pipeline's status snapshot file.
func (p PathsConfig) StatusPath() string {
	return p.resolve(p.StatusFile)
}

// HistoryPath returns the resolved path of the processing history file.
func (p PathsConfig) HistoryPath() string {
	return p.resolve(p.HistoryFile)
}

// LogPath returns the resolved path of the engine log inside the logs folder.
func (p PathsConfig) LogPath() string {
	return filepath.Join(p.resolve(p.Logs), logFileName)
}

// Folder maps one of the fixed folder names (watch, processing, processed,
// output, error) to its configured path. ok is false for unknown names and
// for names with no configured path.
func (p PathsConfig) Folder(name string) (string, bool) {
	var raw string
	switch name {
	case "watch":
		raw = p.Watch
	case "processing":
		raw = p.Processing
	case "processed":
		raw = p.Processed
	case "output":
		raw = p.Output
	case "error":
		raw = p.Error
	default:
		return "", false
	}
	if raw == "" {
		return "", false
	}
	return p.resolve(raw), true
}

// OutputFolder returns the configured output folder path, if set.
func (p PathsConfig) OutputFolder() (string, bool) {
	return p.Folder("output")
}

// resolve expands a ~ prefix and joins relative paths onto BaseDir.
func (p PathsConfig) resolve(path string) string {
	path = expandUser(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(expandUser(p.BaseDir), path)
}

// expandUser replaces a leading "~" with the current user's home directory.
// If the home directory cannot be determined the path is returned unchanged.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
