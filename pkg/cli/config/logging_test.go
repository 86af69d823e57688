package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reposcope/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestLoggingFlags(t *testing.T) {
	parse := func(t *testing.T, args ...string) *config.Logging {
		t.Helper()
		var cfg config.Logging
		cmd := &cli.Command{
			Name:  "test",
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
		return &cfg
	}

	t.Run("logs go to stderr by default", func(t *testing.T) {
		attrs := parse(t).LogValue().Group()
		gt.V(t, len(attrs)).Equal(3)
		gt.V(t, attrs[0].Value.String()).Equal("info")
		gt.V(t, attrs[1].Value.String()).Equal("text")
		gt.V(t, attrs[2].Value.String()).Equal("stderr")
	})

	t.Run("overridden by flags", func(t *testing.T) {
		cfg := parse(t, "-l", "debug", "-f", "json", "-o", "stderr")
		attrs := cfg.LogValue().Group()
		gt.V(t, attrs[0].Value.String()).Equal("debug")
		gt.V(t, attrs[1].Value.String()).Equal("json")
		gt.NoError(t, cfg.Configure())
	})

	t.Run("invalid level fails to configure", func(t *testing.T) {
		cfg := parse(t, "--log-level", "verbose")
		gt.Error(t, cfg.Configure())
	})
}
