package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/nextver/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/nextver/pkg/controller/github"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/infra/actions"
	"github.com/m-mizutani/nextver/pkg/usecase"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

func runBump(ctx context.Context, githubCfg *config.GitHub, bumpCfg *config.Bump, actionsCfg *config.Actions, stdout io.Writer) error {
	logger := logging.From(ctx)

	var (
		event *model.Event
		err   error
	)
	if !bumpCfg.HasPullRequest() {
		event, err = githubcontroller.LoadEvent(ctx, actionsCfg.EventName, actionsCfg.EventPath)
		if err != nil {
			return err
		}
	}

	if githubCfg.Repository == "" && event != nil && event.Repository != "" {
		logger.Debug("Using repository from event payload", slog.String("repository", event.Repository))
		githubCfg.Repository = event.Repository
	}

	githubClient, err := githubCfg.NewClient()
	if err != nil {
		return err
	}

	req, err := bumpCfg.Request(event)
	if err != nil {
		return err
	}

	attrs := []any{
		slog.String("repository", githubCfg.Repository),
		slog.Int("pull_request", req.PullRequest),
		slog.Uint64("build_number", req.BuildNumber),
		slog.Bool("inform", req.Inform),
	}
	if event != nil {
		attrs = append(attrs, slog.String("event", string(event.Type)), slog.String("action", event.Action))
	}
	logger.Info("Starting version bump", attrs...)

	writer := actions.NewWriter(actionsCfg.OutputFile, actionsCfg.SummaryFile, stdout)
	versions, err := usecase.NewBump(githubClient, writer).Bump(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("Version bump complete",
		slog.String("old_version", versions.Old),
		slog.String("new_version", versions.New),
		slog.String("pre_release_version", versions.PreRelease),
	)
	return nil
}
