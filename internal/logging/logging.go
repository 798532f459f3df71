// Package logging builds the slog loggers used by the try2 commands and examples.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = "text"
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// ParseLevel parses debug, info, warn or error. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
	return l, nil
}

// Options configures New.
type Options struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger writing to opts.Output.
func New(opts Options) *slog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	switch opts.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(output, handlerOpts))
	default:
		return slog.New(slog.NewTextHandler(output, handlerOpts))
	}
}

// FromEnv creates a logger from TRY2_LOG_LEVEL and TRY2_LOG_FORMAT.
func FromEnv() (*slog.Logger, error) {
	level, err := ParseLevel(os.Getenv("TRY2_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(os.Getenv("TRY2_LOG_FORMAT"))
	if err != nil {
		return nil, err
	}
	return New(Options{Level: level, Format: format}), nil
}
