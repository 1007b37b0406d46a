// Package cliutil provides output helpers for the variantform CLI.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
)

// Writef writes formatted output to w. Write failures are logged, not returned.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		slog.Warn("cli output write failed", "error", err)
	}
}
