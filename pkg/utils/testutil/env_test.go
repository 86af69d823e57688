package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
	"github.com/secmon-lab/reposcope/pkg/utils/testutil"
)

func TestGitHubUsernameOrSkip(t *testing.T) {
	t.Setenv(testutil.EnvGitHubUsername, "octocat")

	username := testutil.GitHubUsernameOrSkip(t)
	gt.V(t, username).Equal(types.GitHubUsername("octocat"))
}
