// Package logger builds the process-wide slog logger, optionally writing to
// a lumberjack-rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It discards everything until Init or
// InitWithConfig is called.
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Config mirrors the log section of the configuration file.
type Config struct {
	Level      string
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to a slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// writerFor selects the sink for cfg. File output falls back to stderr
// when its directory cannot be created.
func writerFor(cfg Config) io.Writer {
	switch cfg.Output {
	case "stdout":
		return os.Stdout
	case "file":
		if cfg.FilePath == "" {
			cfg.FilePath = "logs/cutsearch.log"
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return os.Stderr
		}

		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		return os.Stderr
	}
}

// New builds a logger for cfg without touching Log.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(writerFor(cfg), cfg)
}

// NewWithWriter builds a logger for cfg that writes to w.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Init installs a text logger on stderr at the given level.
func Init(level string) {
	InitWithConfig(Config{
		Level:  level,
		Format: "text",
		Output: "stderr",
	})
}

// InitWithConfig installs a logger built from cfg as Log and as the slog
// default.
func InitWithConfig(cfg Config) {
	Log = New(cfg)
	slog.SetDefault(Log)
}

// WithRunID tags records with the id of one search run.
func WithRunID(runID string) *slog.Logger {
	return Log.With("run_id", runID)
}

// WithComponent tags records with the emitting component.
func WithComponent(name string) *slog.Logger {
	return Log.With("component", name)
}
