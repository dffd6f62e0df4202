// Package report renders resolved version reports for humans and machines.
package report

import (
	"io"

	"github.com/bitshepherds/vtag/internal/repo"
)

// Source records where a reported version came from.
type Source string

const (
	// SourceTag means the version was resolved from a repository tag.
	SourceTag Source = "tag"
	// SourceFallback means resolution failed and the configured
	// fallback was substituted.
	SourceFallback Source = "fallback"
)

// A Report is the outcome of one version resolution. It is produced,
// rendered and discarded; nothing is persisted between invocations.
type Report struct {
	Version repo.Tag `json:"version"`
	Source  Source   `json:"source"`
}

// Reporter renders a Report to w.
type Reporter interface {
	Write(w io.Writer, r *Report) error
}
