package app

import (
	"fmt"
)

type RepoInitError struct {
	Wrapped error
	Path    string
}

func (e *RepoInitError) Error() string {
	return fmt.Sprintf("cannot use repository directory '%s': %v", e.Path, e.Wrapped)
}

type RepoPathNotDirectoryError struct {
	Path string
}

func (e *RepoPathNotDirectoryError) Error() string {
	return fmt.Sprintf("repository path '%s' is not a directory", e.Path)
}
