package repo

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes one external command and captures its standard output,
// so tests can substitute a fake without spawning real processes. A
// non-zero exit status travels in err (an *exec.ExitError from the real
// implementation); stdout is returned as captured either way.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and returns the captured stdout.
// The child's stderr is discarded: callers surface their own one-line
// failures. Cancelling ctx kills the child; Run always waits for the
// process to exit and its pipe to drain before returning.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	return out.String(), err
}
