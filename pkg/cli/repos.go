package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/reposcope/pkg/cli/config"
	"github.com/secmon-lab/reposcope/pkg/domain/interfaces"
	"github.com/secmon-lab/reposcope/pkg/domain/model"
	"github.com/secmon-lab/reposcope/pkg/domain/types"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// reposOutput overrides os.Stdout in tests
var reposOutput io.Writer

func reposCommand() *cli.Command {
	var (
		username  string
		githubAPI config.GitHubAPI
	)

	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"r"},
		Usage:   "Print non-fork repositories of a GitHub user with their branches as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "GitHub username",
				Sources:     cli.EnvVars("REPOSCOPE_USER"),
				Destination: &username,
				Required:    true,
			},
		}, githubAPI.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting repos",
				slog.String("user", username),
				slog.Any("GitHubAPI", githubAPI),
			)

			uc, err := newUseCase(&githubAPI)
			if err != nil {
				return err
			}

			w := reposOutput
			if w == nil {
				w = os.Stdout
			}
			return printRepositories(ctx, uc, types.GitHubUsername(username), w)
		},
	}
}

func printRepositories(ctx context.Context, uc interfaces.UseCase, username types.GitHubUsername, w io.Writer) error {
	repos, err := uc.GetUserRepositories(ctx, username)
	if err != nil {
		return err
	}
	if repos == nil {
		repos = []*model.Repository{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(repos); err != nil {
		return goerr.Wrap(err, "failed to write repositories", goerr.V("username", username))
	}

	return nil
}
