package ghapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reposcope/pkg/domain/interfaces"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
)

const DefaultBaseURL = "https://api.github.com/"

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	httpClient *http.Client
}

type Option func(*config)

// WithHTTPClient replaces http.DefaultClient used to send requests to GitHub API
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// New creates a GitHub REST API client for the API rooted at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API base URL is empty")
	}

	cfg := &config{
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(cfg)
	}

	// go-github requires a trailing slash on BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", baseURL), goerr.V("error", err.Error()))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API base URL must be http or https", goerr.V("url", baseURL))
	}

	client := github.NewClient(cfg.httpClient)
	client.BaseURL = u

	return &Client{client: client}, nil
}

type repoRecord struct {
	Name  string `json:"name"`
	Owner *struct {
		Login string `json:"login"`
	} `json:"owner"`
	Fork *bool `json:"fork"`
}

type branchRecord struct {
	Name   string `json:"name"`
	Commit *struct {
		SHA *string `json:"sha"`
	} `json:"commit"`
}

// ListUserRepos implements interfaces.GitHub.
func (x *Client) ListUserRepos(ctx context.Context, username types.GitHubUsername, page int) ([]*model.GitHubRawRepository, error) {
	path := fmt.Sprintf("users/%s/repos?page=%d", url.PathEscape(username.String()), page)

	var records []repoRecord
	if err := x.getJSON(ctx, path, &records); err != nil {
		return nil, goerr.Wrap(err, "failed to list user repositories",
			goerr.V("username", username),
			goerr.V("page", page),
		)
	}

	repos := make([]*model.GitHubRawRepository, 0, len(records))
	for _, record := range records {
		repo := &model.GitHubRawRepository{
			Name: record.Name,
		}
		if record.Owner != nil {
			repo.OwnerLogin = record.Owner.Login
		}
		if record.Fork != nil {
			repo.Fork = *record.Fork
		}
		repos = append(repos, repo)
	}

	logging.From(ctx).Debug("Listed user repositories",
		slog.String("username", username.String()),
		slog.Int("page", page),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

// ListBranches implements interfaces.GitHub.
func (x *Client) ListBranches(ctx context.Context, owner types.GitHubUsername, repo string) ([]*model.Branch, error) {
	path := fmt.Sprintf("repos/%s/%s/branches", url.PathEscape(owner.String()), url.PathEscape(repo))

	var records []branchRecord
	if err := x.getJSON(ctx, path, &records); err != nil {
		return nil, goerr.Wrap(err, "failed to list branches",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	branches := make([]*model.Branch, 0, len(records))
	for _, record := range records {
		var sha *types.CommitSHA
		if record.Commit != nil && record.Commit.SHA != nil {
			v := types.CommitSHA(*record.Commit.SHA)
			sha = &v
		}
		branches = append(branches, model.NewBranch(record.Name, sha))
	}

	logging.From(ctx).Debug("Listed branches",
		slog.String("owner", owner.String()),
		slog.String("repo", repo),
		slog.Int("count", len(branches)),
	)

	return branches, nil
}

func (x *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := x.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub API request", goerr.V("path", path))
	}
	req.Header.Set("Accept", "application/json")

	if _, err := x.client.Do(ctx, req, v); err != nil {
		// 202 means GitHub is still computing the list. It is a success without items.
		var acceptedErr *github.AcceptedError
		if errors.As(err, &acceptedErr) {
			logging.From(ctx).Debug("GitHub API accepted request without content", slog.String("url", req.URL.String()))
			return nil
		}

		if code, ok := statusCodeOf(err); ok {
			return &model.UpstreamError{
				StatusCode: code,
				Method:     req.Method,
				URL:        req.URL.String(),
			}
		}
		return goerr.Wrap(err, "failed to send GitHub API request", goerr.V("url", req.URL.String()))
	}

	return nil
}

// statusCodeOf extracts HTTP status code from errors returned by go-github for
// non-2xx responses.
func statusCodeOf(err error) (int, bool) {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode, true
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode, true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode, true
	}

	return 0, false
}
