package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures a rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	Level      slog.Level
	Format     LogFormat
	SessionID  string
}

// NewFileWriter returns a size-rotated writer for path. The parent
// directory is created if needed.
func NewFileWriter(path string, maxSizeMB, maxBackups int) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}, nil
}

// Open builds the process logger. The terminal is busy drawing the banner,
// so without a path every record is discarded. Records carry no component;
// callers add one with WithComponent. The returned closer must be called on
// exit.
func Open(opts FileOptions) (*slog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return NewDiscardLogger(), nopCloser{}, nil
	}

	w, err := NewFileWriter(opts.Path, opts.MaxSizeMB, opts.MaxBackups)
	if err != nil {
		return nil, nil, err
	}

	logger := NewStructuredLogger(Config{
		Level:     opts.Level,
		Format:    opts.Format,
		Output:    w,
		SessionID: opts.SessionID,
	})
	return logger, w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
