package cli

import (
	"fmt"
	"io"
	"os"
)

// Flag state shared with the cmd package.
var (
	quiet   bool
	noColor bool
)

// SetGlobalFlags wires the root command's --quiet and --no-color flags
// into the message helpers.
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
}

// PrintInfo reports progress. Silenced by --quiet.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	emit(os.Stdout, "ℹ", "INFO", format, args...)
}

// PrintWarning reports a recoverable problem on stderr.
func PrintWarning(format string, args ...interface{}) {
	emit(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError reports a failure on stderr.
func PrintError(format string, args ...interface{}) {
	emit(os.Stderr, "✗", "ERROR", format, args...)
}

func emit(w io.Writer, glyph, label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", glyph, msg)
}
