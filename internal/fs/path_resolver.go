// Package fs provides the small filesystem and environment seams the CLI
// depends on, so tests can substitute fakes for the real OS.
package fs

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// PathResolver provides path resolution operations.
type PathResolver interface {
	// CanonicalPath returns the canonical, absolute path by resolving symlinks.
	CanonicalPath(path string) (string, error)
	// ExpandUser replaces a leading ~ with the current user's home directory.
	ExpandUser(path string) (string, error)
}

// StandardPathResolver is the default implementation using standard library
// functions plus go-homedir for ~ expansion.
type StandardPathResolver struct{}

// NewPathResolver creates a new StandardPathResolver.
func NewPathResolver() *StandardPathResolver {
	return &StandardPathResolver{}
}

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
func (r *StandardPathResolver) CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// ExpandUser replaces a leading ~ with the current user's home directory.
// Paths without a ~ prefix are returned unchanged.
func (r *StandardPathResolver) ExpandUser(path string) (string, error) {
	return homedir.Expand(path)
}
