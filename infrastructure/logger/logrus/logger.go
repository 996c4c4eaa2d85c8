// ABOUTME: Logrus-backed logger implementation
// ABOUTME: Provides structured logging with level support for the client

package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// New creates a logrus logger at warn level, the quiet default for library use
func New() *LogrusLogger {
	return NewWithLevel(logrus.WarnLevel)
}

// NewWithLevel creates a logrus logger at the given level
func NewWithLevel(level logrus.Level) *LogrusLogger {
	log := logrus.New()
	log.SetLevel(level)
	return &LogrusLogger{log: log}
}

// SetOutput redirects log output to the given writer
func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
