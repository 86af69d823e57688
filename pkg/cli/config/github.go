package config

import (
	"log/slog"

	"github.com/secmon-lab/reposcope/pkg/infra/ghapi"
	"github.com/secmon-lab/reposcope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type GitHubAPI struct {
	baseURL           string
	maxPages          int64
	branchConcurrency int64
}

func (x *GitHubAPI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Base URL of GitHub REST API",
			Category:    "GitHub API",
			Value:       ghapi.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REPOSCOPE_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "max-pages",
			Usage:       "Maximum number of repository pages fetched per user",
			Category:    "GitHub API",
			Value:       usecase.DefaultMaxPages,
			Destination: &x.maxPages,
			Sources:     cli.EnvVars("REPOSCOPE_MAX_PAGES"),
		},
		&cli.Int64Flag{
			Name:        "branch-concurrency",
			Usage:       "Maximum number of concurrent branch list requests",
			Category:    "GitHub API",
			Value:       usecase.DefaultBranchConcurrency,
			Destination: &x.branchConcurrency,
			Sources:     cli.EnvVars("REPOSCOPE_BRANCH_CONCURRENCY"),
		},
	}
}

// NewClient builds GitHub API client for the configured base URL.
func (x *GitHubAPI) NewClient() (*ghapi.Client, error) {
	return ghapi.New(x.baseURL)
}

func (x *GitHubAPI) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithMaxPages(int(x.maxPages)),
		usecase.WithBranchConcurrency(int(x.branchConcurrency)),
	}
}

func (x GitHubAPI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.Int64("MaxPages", x.maxPages),
		slog.Int64("BranchConcurrency", x.branchConcurrency),
	)
}
