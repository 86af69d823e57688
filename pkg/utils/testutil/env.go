package testutil

import (
	"os"
	"testing"

	"github.com/secmon-lab/reposcope/pkg/domain/types"
)

// EnvGitHubUsername names a real GitHub account used by tests calling the live API.
const EnvGitHubUsername = "TEST_GITHUB_USERNAME"

// GitHubUsernameOrSkip returns the account in EnvGitHubUsername. Tests talking to
// api.github.com are skipped unless it is set.
func GitHubUsernameOrSkip(t *testing.T) types.GitHubUsername {
	t.Helper()
	v, ok := os.LookupEnv(EnvGitHubUsername)
	if !ok || v == "" {
		t.Skipf("%s is not set, skipping test against GitHub API", EnvGitHubUsername)
	}
	return types.GitHubUsername(v)
}
