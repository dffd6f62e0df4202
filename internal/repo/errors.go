package repo

// NoVersionError is the single failure kind for version resolution. It
// covers every sub-cause uniformly: git missing from the search path,
// the directory not being a work tree, no reachable tags, empty command
// output, and spawn or I/O failures.
type NoVersionError struct {
	// Cause retains the underlying failure for debug logging only; it
	// never appears in the user-visible message.
	Cause error
}

func (e *NoVersionError) Error() string {
	return "Version not found."
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *NoVersionError) Unwrap() error {
	return e.Cause
}
