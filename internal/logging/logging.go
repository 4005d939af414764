package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger fields
const (
	Component = "component"
	Method    = "method"
	Path      = "path"
	Status    = "status"
	Duration  = "duration"
	RequestID = "request_id"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a structured logger writing to w at the given level. An
// unknown or empty level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewDefault returns a logger writing to stderr.
func NewDefault(level string) zerolog.Logger {
	return New(os.Stderr, level)
}

// ForComponent returns a child logger tagged with a component name.
func ForComponent(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str(Component, name).Logger()
}
