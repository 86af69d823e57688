package cli

import (
	"context"

	"github.com/secmon-lab/reposcope/pkg/cli/config"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

// Run parses argv and runs the selected command. The returned error has already
// been logged.
func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "reposcope",
		Usage: "Aggregate GitHub user repositories and their branches",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			reposCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logging configured", "config", logCfg)
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
