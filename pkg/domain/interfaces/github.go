package interfaces

import (
	"context"

	"github.com/m-mizutani/nextver/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API. A client
// is bound to one repository when it is created.
type GitHubClient interface {
	// LatestTag returns the name of the most recently created tag, or an empty
	// string if the repository has no tag
	LatestTag(ctx context.Context) (string, error)

	// PullRequestLabels returns label names of a pull request
	PullRequestLabels(ctx context.Context, number int) ([]string, error)

	// ListComments returns one page of issue comments on a pull request and
	// the next page number, which is 0 on the last page
	ListComments(ctx context.Context, number, page int) ([]*model.Comment, int, error)

	// CreateComment creates a comment on a pull request
	CreateComment(ctx context.Context, number int, body string) (*model.Comment, error)

	// UpdateComment replaces the body of an existing comment
	UpdateComment(ctx context.Context, commentID int64, body string) (*model.Comment, error)
}
