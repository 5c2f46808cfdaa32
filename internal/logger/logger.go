package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New constructs a logger for the named service with the level taken from
// LOG_LEVEL (debug, info, warn, error; default info).
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(parseLevel(os.Getenv("LOG_LEVEL"))).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
