// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for output written to w.
// It returns Ascii when NO_COLOR is set or w is not a terminal,
// so piped and redirected output stays plain.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// New creates a new termenv.Output whose profile follows ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts, termenv.WithProfile(ColorProfile(w)))

	return termenv.NewOutput(w, opts...)
}
