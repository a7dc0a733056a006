// Package logging wraps charmbracelet/log with a process-wide default
// logger, string level parsing, and context carriage.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Process-wide logger shared by every package
var (
	defaultLogger *log.Logger
	initOnce      sync.Once
)

// Default returns the shared logger, creating it on first use.
// It writes to stderr so diagnostics never mix with report output.
func Default() *log.Logger {
	initOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a standalone logger at the given level.
func New(level string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Level:           parseLevel(level),
	})
}

// SetLevel changes the level of the shared logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

// parseLevel maps a level name to a log.Level, defaulting unknown names
// to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
