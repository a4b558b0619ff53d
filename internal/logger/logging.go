// Package logger builds preconfigured charmbracelet/log loggers for the
// stemmer's CLI and benchmark output.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm log writing to stderr, so stemming results printed on
// stdout stay machine-readable. Inherits the process-wide log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewReport creates the logger used for benchmark summaries: timestamped,
// info level regardless of the process-wide setting.
func NewReport(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.InfoLevel,
	})
}
