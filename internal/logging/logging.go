// Package logging writes error-level records to the game's log file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger appending to path and the file to close at exit.
// If the file cannot be opened the game still runs, without a log.
func New(path string) (zerolog.Logger, io.Closer) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	return NewWithWriter(f), f
}

// NewWithWriter builds the error-level logger on any writer.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.ErrorLevel).With().Timestamp().Logger()
}

// Component tags every record from one part of the game.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
