// Package logging builds the zerolog loggers used across the binaries.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var root = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup configures the root logger. Output is human readable on a terminal and
// JSON otherwise. An unknown level falls back to info.
func Setup(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.TimeOnly}
	}
	root = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return root
}

// Component returns a child of the root logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}
