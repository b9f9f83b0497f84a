// Package logging wraps zerolog with the two output modes the cmd/
// binaries need: human-readable console output for the interactive
// CLI, structured JSON for the long-running server.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger at the given level, suitable
// for cmd/quickmatch's one-shot and batch invocations.
func New(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// NewJSON builds a JSON logger at the given level, suitable for
// cmd/quickmatch-server where output is consumed by log aggregators
// rather than read directly on a terminal.
func NewJSON(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a CLI-friendly level name to a zerolog.Level,
// defaulting to Info on anything unrecognized.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
