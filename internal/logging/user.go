package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output functions with emoji prefixes.
// These write to stdout/stderr directly for CLI output,
// separate from the structured debug logging.

var (
	// Stdout receives info and success messages.
	Stdout io.Writer = os.Stdout
	// Stderr receives warnings and errors.
	Stderr io.Writer = os.Stderr
)

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "✗ "+format+"\n", args...)
}
