// Package log provides the logging infrastructure for the chatbot client.
//
// This package provides:
//   - A type alias for *slog.Logger to use as DI dependency
//   - Factory functions to create configured loggers
//   - A rotating file logger for TUI sessions
//   - A Nop logger for testing
//
// Loggers are injected via constructors, not globals. Components add
// context via logger.With("component", ...).
//
// While the TUI owns the terminal, logs must not be written to stderr or
// they bleed into the alternate screen. Use NewFile for interactive runs
// and New only for plain CLI subcommands.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a type alias for *slog.Logger.
// Using the standard library type directly keeps full compatibility with
// the slog ecosystem and needs no custom interface definitions.
//
// Components should accept log.Logger as a dependency.
type Logger = *slog.Logger

// Config defines logger configuration options.
type Config struct {
	// Level sets the minimum log level. Default: slog.LevelInfo
	Level slog.Level

	// JSON enables JSON format output. Default: false (text format)
	JSON bool

	// AddSource adds source file information to log entries. Default: false
	AddSource bool
}

// FileConfig configures rotating file output.
type FileConfig struct {
	// Path is the log file location. Required.
	Path string

	// MaxSizeMB is the rotation threshold. Default: 10.
	MaxSizeMB int

	// MaxBackups is how many rotated files to keep. Default: 3.
	MaxBackups int
}

// New creates a new logger with the given configuration.
// Output is written to os.Stderr.
func New(cfg Config) Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter creates a new logger that writes to the specified writer.
// Useful for testing or custom output destinations.
//
// Example:
//
//	var buf bytes.Buffer
//	logger := log.NewWithWriter(&buf, log.Config{})
func NewWithWriter(w io.Writer, cfg Config) Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewFile creates a logger writing to a rotating file.
// Rotation is handled by lumberjack; the returned closer flushes and
// releases the file.
func NewFile(fileCfg FileConfig, cfg Config) (Logger, io.Closer) {
	if fileCfg.MaxSizeMB <= 0 {
		fileCfg.MaxSizeMB = 10
	}
	if fileCfg.MaxBackups <= 0 {
		fileCfg.MaxBackups = 3
	}

	w := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
	}

	return NewWithWriter(w, cfg), w
}

// NewNop creates a logger that discards all output.
//
// This should ONLY be used in tests. Production code should always use
// New, NewFile or NewWithWriter with proper configuration.
func NewNop() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a configuration string to a slog.Level.
// Unknown values fall back to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
