// Package logger builds the zap loggers used by the command line.
package logger

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported log output formats.
const (
	// FormatConsole writes human-readable, tab-separated entries.
	FormatConsole = "console"

	// FormatJSON writes one JSON object per entry.
	FormatJSON = "json"
)

// New creates a logger writing to w at the given level ("debug", "info",
// "warn" or "error") in the given format ("console" or "json").
func New(w io.Writer, level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", format, FormatConsole, FormatJSON)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
