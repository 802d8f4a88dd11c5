package common

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger to provide a consistent logging interface
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a new logger based on configuration
func NewLogger(config *LoggingConfig) *Logger {
	return NewLoggerWithOutput(config, os.Stdout)
}

// NewLoggerWithOutput creates a new logger with a custom output writer
func NewLoggerWithOutput(config *LoggingConfig, output io.Writer) *Logger {
	level := parseLevel(config.Level)

	var logger zerolog.Logger
	if strings.ToLower(config.Format) == "json" {
		logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	} else {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
	}

	return &Logger{Logger: logger}
}

// NewDefaultLogger creates a logger with default settings
func NewDefaultLogger() *Logger {
	return NewLogger(&LoggingConfig{Level: "info", Format: "console"})
}

// NewSilentLogger creates a logger that discards all output (useful for tests)
func NewSilentLogger() *Logger {
	logger := zerolog.New(io.Discard).Level(zerolog.Disabled)
	return &Logger{Logger: logger}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
