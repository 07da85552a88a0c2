// Package logger provides verbose logging for techassist.
// When verbose mode is enabled via the --verbose flag, messages are
// written to stderr so technicians can follow sessions, replies and
// sync retries as they happen.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level tags each line.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines and returns the previous one.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// logf writes one line. component may be empty.
func logf(level Level, component, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if component != "" {
		fmt.Fprintf(output, "[%s] %s: %s\n", level, component, msg)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}

// Debug prints a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, "", format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, "", format, args...)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	logf(LevelWarn, "", format, args...)
}

// Section prints a section header.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Logger prefixes every line with a component name.
type Logger struct {
	component string
}

// For returns a logger for a component such as "session" or "sync".
func For(component string) *Logger {
	return &Logger{component: component}
}

// Debug prints a debug message.
func (l *Logger) Debug(format string, args ...any) {
	logf(LevelDebug, l.component, format, args...)
}

// Info prints an informational message.
func (l *Logger) Info(format string, args ...any) {
	logf(LevelInfo, l.component, format, args...)
}

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...any) {
	logf(LevelWarn, l.component, format, args...)
}
