package interfaces

import (
	"context"

	"github.com/m-mizutani/nextver/pkg/domain/model"
)

// BumpUseCase computes the next version of a repository
type BumpUseCase interface {
	// Bump resolves the level and versions, informs the pull request when
	// requested and emits the versions as workflow outputs
	Bump(ctx context.Context, req *model.BumpRequest) (*model.VersionSet, error)
}
