package app

import (
	"github.com/spf13/cobra"
)

// NewCheckCmd returns a new cobra command for verifying that the
// repository has a resolvable version tag.
func NewCheckCmd(mgr Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that a version tag is resolvable",
		Long: `
Resolve the current version tag and fail if there is none. Unlike the
bare vtag invocation, check never substitutes a configured fallback:
an unreachable version tag is exactly the condition a CI gate exists
to catch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := mgr.Config()
			return mgr.CheckVersion(cmd.Context(), effectiveMatch(cmd, cfg), effectiveTimeout(cmd, cfg))
		},
	}

	return cmd
}
