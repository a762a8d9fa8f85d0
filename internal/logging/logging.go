// Package logging builds the charmbracelet loggers used across the narrator.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w with a component prefix.
// A nil writer means stderr.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
