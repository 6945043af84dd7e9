package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(source, dest string) {
	l.Debug("conversion started",
		"source", source,
		"dest", dest)
}

// ConversionCompleted logs a successful conversion
func (l *Logger) ConversionCompleted(source, dest string, blocks int, duration time.Duration) {
	l.Info("conversion completed",
		"source", source,
		"dest", dest,
		"blocks", blocks,
		"duration", duration.Round(time.Millisecond))
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source, dest string, err error) {
	l.Error("conversion failed",
		"source", source,
		"dest", dest,
		"error", err)
}

// FrontMatter logs what was lifted out of a leading front-matter block
func (l *Logger) FrontMatter(title string) {
	l.Debug("front matter extracted",
		"title", title)
}

// Skipped logs when an element is dropped from the output
func (l *Logger) Skipped(what, reason string) {
	l.Debug("skipped",
		"element", what,
		"reason", reason)
}
