package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// LogFormat specifies the output format of the log file.
type LogFormat string

const (
	// FormatJSON writes one JSON object per line.
	FormatJSON LogFormat = "json"
	// FormatText writes key=value lines.
	FormatText LogFormat = "text"
)

// Config holds configuration for structured logging.
type Config struct {
	Level  slog.Level
	Format LogFormat
	// Output receives the records. Nil discards them.
	Output io.Writer
	// Component and SessionID are attached to every record when set.
	Component string
	SessionID string
}

// NewStructuredLogger creates a logger for one afk process.
func NewStructuredLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	if cfg.SessionID != "" {
		logger = WithSession(logger, cfg.SessionID)
	}
	if cfg.Component != "" {
		logger = WithComponent(logger, cfg.Component)
	}
	return logger
}

// replaceAttr stores the record time under "ts" and renders durations such
// as the time away as "3m10s" instead of nanoseconds.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String("ts", t.Format(time.RFC3339Nano))
		}
	}
	if a.Value.Kind() == slog.KindDuration {
		return slog.String(a.Key, a.Value.Duration().String())
	}
	return a
}

// WithSession returns a new logger tagged with the given session ID.
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With(slog.String("session_id", sessionID))
}

// WithComponent returns a new logger with the given component name. Call it
// once per logger; slog keeps duplicate keys.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}

// ParseLevel converts a string level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string format to LogFormat. Anything but "text" is JSON.
func ParseFormat(format string) LogFormat {
	if strings.EqualFold(format, string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}
