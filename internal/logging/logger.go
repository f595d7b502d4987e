// Package logging wraps a process-wide structured logger writing to stderr.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. Nil until Init is called; helpers are no-ops until then.
var Logger *log.Logger

// Init creates the global logger. Debug output is only emitted when debug is true;
// warnings are always shown.
func Init(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: debug,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "appledev",
	})
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}
