package config

import "github.com/secmon-lab/reposcope/pkg/domain/types"

func NewSentryForTest(dsn types.SentryDSN, env string) *Sentry {
	return &Sentry{dsn: dsn, environment: env}
}

func NewGitHubAPIForTest(baseURL string, maxPages, branchConcurrency int64) *GitHubAPI {
	return &GitHubAPI{baseURL: baseURL, maxPages: maxPages, branchConcurrency: branchConcurrency}
}
