package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/reposcope/pkg/cli/config"
	"github.com/secmon-lab/reposcope/pkg/controller/server"
	"github.com/secmon-lab/reposcope/pkg/infra"
	"github.com/secmon-lab/reposcope/pkg/usecase"
	"github.com/secmon-lab/reposcope/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubAPI config.GitHubAPI
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOSCOPE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubAPI.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubAPI", githubAPI),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := newUseCase(&githubAPI)
			if err != nil {
				return err
			}
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

func newUseCase(githubAPI *config.GitHubAPI) (*usecase.UseCase, error) {
	ghClient, err := githubAPI.NewClient()
	if err != nil {
		return nil, err
	}

	clients := infra.New(infra.WithGitHub(ghClient))
	return usecase.New(clients, githubAPI.UseCaseOptions()...), nil
}
