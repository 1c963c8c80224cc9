// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// UsageError marks flag and validation failures so drivers can exit 2
// instead of the runtime-failure 1.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError in one call.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ExitCode maps an error from a tool driver to its process exit code.
func ExitCode(err error) int {
	var ue *UsageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

var errPrefix = color.New(color.FgRed, color.Bold)

// PrintError writes the single-line diagnostic every tool emits before
// terminating.
func PrintError(w io.Writer, err error) {
	_, _ = errPrefix.Fprint(w, "error:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}

// Verbosef prints per-file notices when --verbose is set.
func Verbosef(w io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", a...)
}
