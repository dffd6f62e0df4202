package repo

import (
	"context"
)

// Tag represents a version tag resolved from a repository, e.g. "v1.2.0".
// It is an opaque label: never parsed, never ordered.
type Tag string

func (t Tag) String() string { return string(t) }

// DescribeOptions controls which tags DescribeTag considers.
type DescribeOptions struct {
	// Match restricts candidate tags to those matching the glob, passed
	// through to git's --match. Empty means every tag is a candidate.
	Match string
}

// Gitter defines the interface for git repository operations.
type Gitter interface {
	// DescribeTag finds the newest version tag reachable from HEAD.
	// Every failure to resolve one is reported as *NoVersionError.
	DescribeTag(ctx context.Context, opts DescribeOptions) (Tag, error)
}
