// Package logger provides verbose logging for the wik CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr (or the --log-file) to show cache hits, misses
// and background loads.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// sectionField marks an entry rendered as a section header.
const sectionField = "section"

// quietLevel suppresses every message the package emits.
const quietLevel = logrus.ErrorLevel

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(quietLevel)
	return l
}

// lineFormatter renders "[LEVEL] message" lines and section headers.
type lineFormatter struct{}

// Format implements logrus.Formatter.
func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if name, ok := e.Data[sectionField]; ok {
		return []byte(fmt.Sprintf("\n=== %v ===\n", name)), nil
	}
	return []byte("[" + levelTag(e.Level) + "] " + e.Message + "\n"), nil
}

func levelTag(level logrus.Level) string {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG"
	case logrus.InfoLevel:
		return "INFO"
	case logrus.WarnLevel:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	if v {
		std.SetLevel(logrus.DebugLevel)
		return
	}
	std.SetLevel(quietLevel)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return std.IsLevelEnabled(logrus.DebugLevel)
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// OpenFile redirects output to the file at path, appending to it.
// The caller closes the returned file when done logging.
func OpenFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return f, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	std.Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	if IsVerbose() {
		std.WithField(sectionField, name).Info("")
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	if IsVerbose() {
		std.Infof(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	if IsVerbose() {
		std.Warnf(format, args...)
	}
}
