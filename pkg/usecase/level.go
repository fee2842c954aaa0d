package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

// resolveLevel returns the explicit level of req if there is one, otherwise
// classifies the labels of the pull request
func (uc *bumpUseCase) resolveLevel(ctx context.Context, req *model.BumpRequest) (model.Level, error) {
	logger := logging.From(ctx)

	if req.Level != "" {
		level, err := model.ParseLevel(string(req.Level))
		if err != nil {
			return "", err
		}
		logger.Info("Using configured level", "level", level)
		return level, nil
	}

	if !req.HasPullRequest() {
		return "", goerr.New("pull request number is required to read labels",
			goerr.T(types.ErrTagConfiguration),
		)
	}

	labels, err := uc.githubClient.PullRequestLabels(ctx, req.PullRequest)
	if err != nil {
		return "", err
	}

	level, err := model.ClassifyLevel(labels)
	if err != nil {
		logger.Warn("Pull request labels do not name a level",
			"pull_request", req.PullRequest,
			"labels", labels,
		)
		return "", err
	}

	logger.Info("Classified pull request labels",
		"pull_request", req.PullRequest,
		"labels", labels,
		"level", level,
	)
	return level, nil
}
