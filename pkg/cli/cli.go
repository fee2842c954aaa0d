package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/m-mizutani/nextver/pkg/cli/config"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/infra/actions"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var (
		loggerCfg  config.Logger
		githubCfg  config.GitHub
		bumpCfg    config.Bump
		actionsCfg config.Actions
		logger     *slog.Logger
	)

	app := &cli.Command{
		Name:    "nextver",
		Usage:   "Compute the next semantic version from pull request labels",
		Version: types.Version,
		Flags: slices.Concat(
			loggerCfg.Flags(),
			githubCfg.Flags(),
			bumpCfg.Flags(),
			actionsCfg.Flags(),
		),
		Writer: stdout,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runBump(ctx, &githubCfg, &bumpCfg, &actionsCfg, stdout)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		actions.Fail(stdout, err.Error())
		return err
	}

	return nil
}
