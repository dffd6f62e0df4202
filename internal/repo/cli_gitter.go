package repo

import (
	"context"
	"strings"
)

// CLIGitter is the concrete implementation of Gitter using the git CLI.
// The repository directory is explicit state rather than an ambient
// working-directory assumption.
type CLIGitter struct {
	dir    string
	runner Runner
}

// NewCLIGitter creates a new CLIGitter operating on the repository at
// dir. A nil runner selects the real ExecRunner.
func NewCLIGitter(dir string, runner Runner) *CLIGitter {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &CLIGitter{dir: dir, runner: runner}
}

// DescribeTag finds the newest version tag reachable from HEAD. The
// returned tag is the command's stdout with surrounding whitespace
// trimmed; a clean exit with empty output still counts as not found.
func (g *CLIGitter) DescribeTag(ctx context.Context, opts DescribeOptions) (Tag, error) {
	// --abbrev=0 reports the closest reachable tag itself instead of a
	// tag-relative description
	args := []string{"describe", "--tags", "--abbrev=0"}
	if opts.Match != "" {
		args = append(args, "--match", opts.Match)
	}

	out, err := g.runner.Run(ctx, g.dir, "git", args...)
	if err != nil {
		return "", &NoVersionError{Cause: err}
	}

	tag := strings.TrimSpace(out)
	if tag == "" {
		return "", &NoVersionError{}
	}

	return Tag(tag), nil
}
