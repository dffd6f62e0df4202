package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bitshepherds/vtag/internal/config"
	"github.com/bitshepherds/vtag/internal/repo"
	"github.com/bitshepherds/vtag/internal/report"
)

// Manager defines the business logic for version reporting operations.
type Manager interface {
	CurrentVersion(ctx context.Context, match, fallback string, timeout time.Duration, format string) error
	CheckVersion(ctx context.Context, match string, timeout time.Duration) error
	Config() *config.Config
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) CurrentVersion(ctx context.Context, match, fallback string,
	timeout time.Duration, format string,
) error {
	return l.check().CurrentVersion(ctx, match, fallback, timeout, format)
}

func (l *LazyManager) CheckVersion(ctx context.Context, match string, timeout time.Duration) error {
	return l.check().CheckVersion(ctx, match, timeout)
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	gitter         repo.Gitter
	cfg            *config.Config
	reporterWriter io.Writer
}

// NewCLIManager wires up a manager for one invocation. A nil out
// selects os.Stdout.
func NewCLIManager(l *slog.Logger, g repo.Gitter, cfg *config.Config, out io.Writer) *CLIManager {
	if out == nil {
		out = os.Stdout
	}
	return &CLIManager{
		logger:         l,
		gitter:         g,
		cfg:            cfg,
		reporterWriter: out,
	}
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

// CurrentVersion resolves the repository's version tag and writes a
// report in the given format. When resolution fails and a fallback is
// configured, the fallback is reported instead and the invocation
// still succeeds.
func (m *CLIManager) CurrentVersion(ctx context.Context, match, fallback string,
	timeout time.Duration, format string,
) error {
	m.logger.Debug("resolving current version",
		"match", match, "fallback", fallback, "timeout", timeout, "format", format)

	r, err := m.resolve(ctx, match, timeout)
	if err != nil {
		if fallback == "" {
			return err
		}
		m.logger.Debug("substituting the fallback version", "fallback", fallback)
		r = &report.Report{Version: repo.Tag(fallback), Source: report.SourceFallback}
	}

	var reporter report.Reporter
	switch format {
	case "json":
		reporter = &report.JSONReporter{}
	default:
		reporter = &report.TextReporter{}
	}

	return reporter.Write(m.reporterWriter, r)
}

// CheckVersion resolves the repository's version tag and confirms it.
// Fallbacks never apply here: an unresolvable tag is the condition a
// CI gate exists to catch.
func (m *CLIManager) CheckVersion(ctx context.Context, match string, timeout time.Duration) error {
	m.logger.Debug("checking for a version tag", "match", match, "timeout", timeout)

	r, err := m.resolve(ctx, match, timeout)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(m.reporterWriter, "Version tag found: %s\n", r.Version)
	return err
}

// resolve runs one bounded tag resolution. A zero timeout means wait
// until git exits or the parent context is cancelled.
func (m *CLIManager) resolve(ctx context.Context, match string, timeout time.Duration) (*report.Report, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tag, err := m.gitter.DescribeTag(ctx, repo.DescribeOptions{Match: match})
	if err != nil {
		m.logger.Debug("version resolution failed", "cause", errors.Unwrap(err))
		return nil, err
	}

	m.logger.Debug("resolved version tag", "tag", tag)
	return &report.Report{Version: tag, Source: report.SourceTag}, nil
}
