// Package logging builds the process-wide structured loggers.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel selects the log level (debug, info, warn, error)
const EnvLevel = "COLOR_SENTENCE_LOG"

// New returns a stderr logger tagged with the component name. The default
// level is warn so regular CLI output stays clean.
func New(component string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(os.Getenv(EnvLevel)),
		Prefix:          component,
		ReportTimestamp: false,
	})
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
