// Package logging builds the logr.Logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New returns a logger writing one line per entry to w.
// verbosity 0 prints milestones only; 1 adds one entry per emitted command.
func New(w io.Writer, verbosity int) logr.Logger {
	if w == nil {
		w = os.Stderr
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity: verbosity,
		LogCaller: funcr.None,
	})
}

// Discard returns a logger that drops everything.
func Discard() logr.Logger {
	return logr.Discard()
}
