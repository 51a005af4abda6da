// Package logging builds the process logger. The live display owns stdout
// and stderr, so log lines only go to a file when one is configured.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	apperrors "pomo/internal/platform/errors"
)

// Logger bundles a zerolog logger with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// New opens path for appending and returns a JSON logger at the given level.
// An empty path yields a disabled logger; the level is checked either way.
func New(path, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return &Logger{Logger: zerolog.Nop()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{
		Logger: NewWriter(file, lvl),
		closer: file,
	}, nil
}

// NewWriter returns a timestamped JSON logger writing to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q: %v", apperrors.ErrInvalidInput, level, err)
	}
	return lvl, nil
}

// Close releases the log file. It is a no-op for disabled loggers.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
