// Package logging builds the zerolog logger shared by the server and its
// middleware.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is attached to every log line.
const ServiceName = "ai"

// New returns a logger writing to w.  Production output is JSON, one event
// per line; any other environment gets zerolog's human-readable console
// format.  An unknown or empty level falls back to info.
func New(w io.Writer, level string, production bool) zerolog.Logger {
	if !production {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// ParseLevel maps a level name to a zerolog.Level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
