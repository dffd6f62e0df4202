package report

import (
	"fmt"
	"io"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct{}

// Write emits the version line. The format is a contract consumed by
// scripts and CI pipelines: exactly "Current Version: <tag>" and a
// trailing newline, no colour, no decoration.
func (tr *TextReporter) Write(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, "Current Version: %s\n", r.Version)
	return err
}
