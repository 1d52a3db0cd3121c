package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level is a log level name as it appears in configuration.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	// Disabled silences every event.
	Disabled Level = "disabled"
)

// Config represents logger configuration.
type Config struct {
	// Level defaults to warn so background noise stays off the terminal.
	Level Level
	// Pretty switches to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stderr; stdout is reserved for command output.
	Output io.Writer
}

// New builds a logger from config. Unknown levels fall back to warn.
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(writer).Level(parseLevel(config.Level)).With().Timestamp().Logger()
}

func parseLevel(level Level) zerolog.Level {
	switch Level(strings.ToLower(strings.TrimSpace(string(level)))) {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case Disabled:
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
