package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitshepherds/vtag/internal/config"
	"github.com/bitshepherds/vtag/internal/fs"
	"github.com/bitshepherds/vtag/internal/repo"
)

// Version is the current version of vtag, set at build time.
var Version = "dev"

const (
	// RepoDirEnvVar names the environment variable consulted for the
	// repository directory when --repo is not given.
	RepoDirEnvVar = "VTAG_REPO_DIR"

	// DefaultTimeout bounds the wait for git when neither --timeout nor
	// the config file says otherwise.
	DefaultTimeout = 10 * time.Second
)

var LongDescription = `
vtag reports the current version of a git repository: the newest version
tag reachable from HEAD, as resolved by git describe. Use it wherever a
build script or CI pipeline needs the repository itself to be the
system of record for version numbers.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer,
	envProvider fs.EnvProvider,
) *cobra.Command {
	var debug bool
	var match string
	var fallback string
	var timeout time.Duration
	repoPath := pathValue("")
	outputVal := formatValue("text")

	rootCmd := &cobra.Command{
		Use:           "vtag",
		Short:         "Report the current version tag of a git repository",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help and completion commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// 2. Build Dependencies
			dir, err := resolveRepoDir(string(repoPath), envProvider, fs.NewPathResolver())
			if err != nil {
				return err
			}

			cfg, err := config.New(dir)
			if err != nil {
				return err
			}

			logger, _, err := setupLogger(stderr, ll, envProvider.Get(LogEnvVar))
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			gitter := repo.NewCLIGitter(dir, nil)

			// 3. Hydrate the Lazy Wrapper
			lazy.SetInner(NewCLIManager(logger, gitter, cfg, stdout))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := lazy.Config()
			return lazy.CurrentVersion(
				cmd.Context(),
				effectiveMatch(cmd, cfg),
				effectiveFallback(cmd, cfg),
				effectiveTimeout(cmd, cfg),
				string(outputVal),
			)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().VarP(&repoPath, "repo", "r",
		"repository directory (overrides "+RepoDirEnvVar+"; defaults to the working directory)")
	rootCmd.PersistentFlags().StringVarP(&match, "match", "m", "",
		"only consider tags matching this glob")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", DefaultTimeout,
		"give up waiting for git after this long")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	// Flags for the bare invocation only
	rootCmd.Flags().StringVarP(&fallback, "fallback", "f", "",
		"version to report when no tag can be resolved")
	rootCmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	// Subcommands
	rootCmd.AddCommand(NewCheckCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the
// "completion" command, or one of cobra's hidden completion request commands.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// resolveRepoDir determines the repository directory for this
// invocation: an explicit --repo wins, then VTAG_REPO_DIR, then the
// working directory. The result is canonical, with ~ expanded.
func resolveRepoDir(flagPath string, envProvider fs.EnvProvider, pathResolver fs.PathResolver) (string, error) {
	dir := flagPath
	if dir == "" {
		dir = envProvider.Get(RepoDirEnvVar)
	}
	if dir == "" {
		dir = "."
	}

	expanded, err := pathResolver.ExpandUser(dir)
	if err != nil {
		return "", &RepoInitError{Path: dir, Wrapped: err}
	}

	canonical, err := pathResolver.CanonicalPath(expanded)
	if err != nil {
		return "", &RepoInitError{Path: dir, Wrapped: err}
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", &RepoInitError{Path: dir, Wrapped: err}
	}
	if !info.IsDir() {
		return "", &RepoPathNotDirectoryError{Path: dir}
	}

	return canonical, nil
}

// effectiveMatch returns the match glob for this invocation: an
// explicit --match wins over the config file.
func effectiveMatch(cmd *cobra.Command, cfg *config.Config) string {
	if !cmd.Flags().Changed("match") && cfg.Match != "" {
		return cfg.Match
	}
	v, _ := cmd.Flags().GetString("match")
	return v
}

// effectiveFallback returns the fallback version for this invocation:
// an explicit --fallback wins over the config file.
func effectiveFallback(cmd *cobra.Command, cfg *config.Config) string {
	if !cmd.Flags().Changed("fallback") && cfg.Fallback != "" {
		return cfg.Fallback
	}
	v, _ := cmd.Flags().GetString("fallback")
	return v
}

// effectiveTimeout returns the resolution timeout for this invocation:
// an explicit --timeout wins over the config file, which wins over
// DefaultTimeout.
func effectiveTimeout(cmd *cobra.Command, cfg *config.Config) time.Duration {
	if !cmd.Flags().Changed("timeout") && cfg.Timeout != 0 {
		return time.Duration(cfg.Timeout)
	}
	v, _ := cmd.Flags().GetDuration("timeout")
	return v
}
