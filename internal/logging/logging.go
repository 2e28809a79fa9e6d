// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Options configures Setup.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// ParseLevel maps a level name onto charm's levels; unknown names give info.
func ParseLevel(name string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New builds a charm logger for opts. Output defaults to stderr, which
// keeps stdout free for the stdio MCP transport.
func New(opts Options) *charmlog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(opts.Level),
	})
	if opts.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	} else {
		logger.SetFormatter(charmlog.TextFormatter)
	}
	return logger
}

// Setup makes a charm-backed handler the slog default and returns it.
func Setup(opts Options) *slog.Logger {
	l := slog.New(New(opts))
	slog.SetDefault(l)
	return l
}
