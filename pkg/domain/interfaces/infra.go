package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
)

// GitHub is a read-only client of GitHub REST API. Non-2xx responses are returned
// as *model.UpstreamError.
type GitHub interface {
	// ListUserRepos returns one page of repositories of the user. An exhausted
	// listing returns an empty slice.
	ListUserRepos(ctx context.Context, username types.GitHubUsername, page int) ([]*model.GitHubRawRepository, error)

	// ListBranches returns all branches of the repository in GitHub's order.
	ListBranches(ctx context.Context, owner types.GitHubUsername, repo string) ([]*model.Branch, error)
}
