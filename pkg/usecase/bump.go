package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/interfaces"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

// Names of the step outputs
const (
	OutputOldVersion        = "old_version"
	OutputNewVersion        = "new_version"
	OutputPreReleaseVersion = "pre_release_version"
)

type bumpUseCase struct {
	githubClient interfaces.GitHubClient
	output       interfaces.OutputWriter
}

// NewBump creates a new instance of BumpUseCase
func NewBump(githubClient interfaces.GitHubClient, output interfaces.OutputWriter) interfaces.BumpUseCase {
	return &bumpUseCase{
		githubClient: githubClient,
		output:       output,
	}
}

// Bump runs level classification, version resolution, the optional status
// comment and output emission in this order. The first failure stops the run
// and no output is written.
func (uc *bumpUseCase) Bump(ctx context.Context, req *model.BumpRequest) (*model.VersionSet, error) {
	logger := logging.From(ctx)

	level, err := uc.resolveLevel(ctx, req)
	if err != nil {
		return nil, err
	}

	versions, err := uc.resolveVersions(ctx, level, req.FallbackTag, req.BuildNumber)
	if err != nil {
		return nil, err
	}

	switch {
	case !req.Inform:
		logger.Info("Informing is disabled, skip status comment")
	case !req.HasPullRequest():
		logger.Info("No pull request for this run, skip status comment")
	default:
		if err := uc.upsertStatusComment(ctx, req.PullRequest, versions); err != nil {
			return nil, err
		}
	}

	if err := uc.emitOutputs(versions); err != nil {
		return nil, err
	}

	return versions, nil
}

func (uc *bumpUseCase) emitOutputs(versions *model.VersionSet) error {
	outputs := []struct {
		name  string
		value string
	}{
		{name: OutputOldVersion, value: versions.Old},
		{name: OutputNewVersion, value: versions.New},
		{name: OutputPreReleaseVersion, value: versions.PreRelease},
	}

	for _, o := range outputs {
		if err := uc.output.SetOutput(o.name, o.value); err != nil {
			return err
		}
	}

	body, err := render(summary, versions)
	if err != nil {
		return err
	}
	if err := uc.output.AppendSummary(body); err != nil {
		return goerr.Wrap(err, "failed to append job summary")
	}

	return nil
}
