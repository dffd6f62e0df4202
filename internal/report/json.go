package report

import (
	"encoding/json"
	"io"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

func (jr *JSONReporter) Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
