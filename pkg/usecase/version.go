package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

// resolveVersions computes the versions from the latest tag of the
// repository, or from fallbackTag when the repository has no tag
func (uc *bumpUseCase) resolveVersions(ctx context.Context, level model.Level, fallbackTag string, buildNumber uint64) (*model.VersionSet, error) {
	logger := logging.From(ctx)

	tag, err := uc.githubClient.LatestTag(ctx)
	if err != nil {
		return nil, err
	}

	if tag != "" {
		logger.Info("Using latest tag from repository", "tag", tag)
	} else {
		if fallbackTag == "" {
			return nil, goerr.New("no tag found in repository, and no fallback tag provided",
				goerr.T(types.ErrTagNoTag),
			)
		}
		logger.Info("No tag found in repository, using fallback", "fallback_tag", fallbackTag)
		tag = fallbackTag
	}

	versions, err := model.NextVersions(tag, level, buildNumber)
	if err != nil {
		return nil, err
	}

	logger.Info("Incremented version",
		"old_version", versions.Old,
		"level", level,
		"new_version", versions.New,
		"pre_release_version", versions.PreRelease,
	)
	return versions, nil
}
