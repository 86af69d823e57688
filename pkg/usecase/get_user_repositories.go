package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// GetUserRepositories returns all non-fork repositories of the user with their
// branches, in the order GitHub listed them. If the repository listing answers 404,
// it returns types.ErrUserNotFound. Any other failure is returned as is and no
// partial result is returned.
func (x *UseCase) GetUserRepositories(ctx context.Context, username types.GitHubUsername) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API client is not configured")
	}

	logger := logging.From(ctx).With(slog.String("username", username.String()))

	rawRepos, err := x.listNonForkRepos(ctx, username)
	if err != nil {
		return nil, classifyListError(err, username)
	}

	logger.Debug("Resolving branches",
		slog.Int("repos", len(rawRepos)),
		slog.Int("concurrency", x.branchConcurrency),
	)

	repos := make([]*model.Repository, len(rawRepos))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.branchConcurrency)

	for i, raw := range rawRepos {
		eg.Go(func() error {
			branches, err := x.clients.GitHub().ListBranches(egCtx, username, raw.Name)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve branches",
					goerr.V("username", username),
					goerr.V("repo", raw.Name),
				)
			}
			repos[i] = model.NewRepository(raw, branches)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Aggregated user repositories", slog.Int("repos", len(repos)))

	return repos, nil
}

// listNonForkRepos walks the repository listing from page 1 until an empty page is
// returned or maxPages pages have been fetched.
func (x *UseCase) listNonForkRepos(ctx context.Context, username types.GitHubUsername) ([]*model.GitHubRawRepository, error) {
	var results []*model.GitHubRawRepository

	page := 1
	for ; page <= x.maxPages; page++ {
		repos, err := x.clients.GitHub().ListUserRepos(ctx, username, page)
		if err != nil {
			return nil, err
		}
		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			if repo.Fork {
				continue
			}
			results = append(results, repo)
		}
	}

	if page > x.maxPages {
		// The caller cannot tell a capped listing from an exhausted one.
		logging.From(ctx).Warn("Reached max pages of repository listing",
			slog.String("username", username.String()),
			slog.Int("max_pages", x.maxPages),
		)
	}

	return results, nil
}

// classifyListError converts 404 of the repository listing into ErrUserNotFound.
func classifyListError(err error, username types.GitHubUsername) error {
	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.IsNotFound() {
		return goerr.Wrap(types.ErrUserNotFound, "GitHub user not found",
			goerr.V("username", username),
		)
	}
	return err
}
