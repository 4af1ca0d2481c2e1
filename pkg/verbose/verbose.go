// Package verbose provides opt-in debug logging for sdkui, backed by
// charmbracelet/log. Debug output stays suppressed until Enable is called
// (typically from the --verbose flag).
package verbose

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr)
)

// newLogger builds the package logger. Debug messages are filtered out
// until Enable raises the level.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
}

// Enable turns on verbose logging so debug messages are printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(log.DebugLevel)
}

// Disable turns off verbose logging and suppresses debug messages.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(log.WarnLevel)
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if debug messages are printed, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return logger.GetLevel() <= log.DebugLevel
}

// SetWriter redirects verbose output to the given writer.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		return
	}
	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
}

// Printf prints a formatted debug message if verbose logging is enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debugf(format, args...)
}

// Info prints a debug message if verbose logging is enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug(msg)
}

// Infof prints a formatted debug message if verbose logging is enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debugf(format, args...)
}

// Warnf prints a formatted warning. Warnings are printed regardless of
// whether verbose logging is enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warnf(format, args...)
}
