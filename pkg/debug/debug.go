// Package debug provides optional diagnostic logging for scrawl.
//
// Set the SCRAWL_DEBUG environment variable to turn it on:
//
//	SCRAWL_DEBUG=1 scrawl notes.md 2>debug.log
//
// Messages go to stderr because the TUI owns stdout; redirect stderr to
// a file when debugging interactively. With the variable unset every
// function in this package is a no-op.
package debug

import (
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("SCRAWL_DEBUG") != "" {
		enabled = true
		logger = newLogger()
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "[SCRAWL] ", log.Ltime|log.Lmicroseconds)
}

// Enabled reports whether diagnostic logging is on.
func Enabled() bool {
	return enabled
}

// SetEnabled turns diagnostic logging on or off at runtime, regardless
// of the environment variable.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = newLogger()
	}
}

// Log writes a printf-formatted diagnostic message.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming records how long a named operation took.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}
