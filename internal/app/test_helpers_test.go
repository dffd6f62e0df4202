package app

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bitshepherds/vtag/internal/config"
	"github.com/bitshepherds/vtag/internal/repo"
)

// MockManager is a testify mock for the Manager interface.
type MockManager struct {
	mock.Mock
	cfg *config.Config
}

func (m *MockManager) CurrentVersion(ctx context.Context, match, fallback string,
	timeout time.Duration, format string,
) error {
	args := m.Called(ctx, match, fallback, timeout, format)
	return args.Error(0)
}

func (m *MockManager) CheckVersion(ctx context.Context, match string, timeout time.Duration) error {
	args := m.Called(ctx, match, timeout)
	return args.Error(0)
}

func (m *MockManager) Config() *config.Config {
	if m.cfg == nil {
		return &config.Config{}
	}
	return m.cfg
}

// MockGitter is a test mock for the repo.Gitter interface.
type MockGitter struct {
	DescribeTagFunc func(ctx context.Context, opts repo.DescribeOptions) (repo.Tag, error)
}

func (m *MockGitter) DescribeTag(ctx context.Context, opts repo.DescribeOptions) (repo.Tag, error) {
	if m.DescribeTagFunc != nil {
		return m.DescribeTagFunc(ctx, opts)
	}
	return "v1.0.0", nil
}

// mockEnvProvider returns canned environment values.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.values[key]
}

// setupGitRepo creates a git repository with one commit per tag, oldest
// tag first.
func setupGitRepo(t *testing.T, tags ...string) string {
	t.Helper()
	dir := t.TempDir()

	git := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			t.Fatalf("git %v failed: %v", args, err)
		}
	}

	git("init")
	git("config", "user.email", "test@example.com")
	git("config", "user.name", "Test User")
	git("commit", "--allow-empty", "-m", "initial commit")
	for _, tag := range tags {
		git("commit", "--allow-empty", "-m", "release "+tag)
		git("tag", tag)
	}

	return dir
}
