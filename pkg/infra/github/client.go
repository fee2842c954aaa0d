package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/interfaces"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

// commentsPerPage is the page size used when listing comments
const commentsPerPage = 100

type config struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
}

// NewClient creates a GitHub client authenticated with token and bound to
// the owner/repo repository
func NewClient(token, owner, repo string, opts ...Option) (interfaces.GitHubClient, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	githubClient := github.NewClient(cfg.httpClient).WithAuthToken(token)

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API URL",
				goerr.T(types.ErrTagConfiguration),
				goerr.V("url", cfg.baseURL),
			)
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
		owner:        owner,
		repo:         repo,
	}, nil
}

// LatestTag fetches the first tag of the first page with a page size of one
func (c *client) LatestTag(ctx context.Context) (string, error) {
	tags, resp, err := c.githubClient.Repositories.ListTags(ctx, c.owner, c.repo, &github.ListOptions{
		Page:    1,
		PerPage: 1,
	})
	if err != nil {
		return "", c.wrap(err, "failed to list tags")
	}
	logRateLimit(ctx, resp, "list tags")

	if len(tags) == 0 {
		return "", nil
	}

	name := tags[0].GetName()
	if name == "" {
		return "", goerr.New("tag without name in response",
			goerr.T(types.ErrTagCollaborator),
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
		)
	}

	return name, nil
}

// PullRequestLabels fetches the pull request and returns its label names
func (c *client) PullRequestLabels(ctx context.Context, number int) ([]string, error) {
	pr, resp, err := c.githubClient.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, c.wrap(err, "failed to get pull request", goerr.V("number", number))
	}
	logRateLimit(ctx, resp, "get pull request")

	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	return labels, nil
}

// ListComments fetches one page of issue comments on the pull request
func (c *client) ListComments(ctx context.Context, number, page int) ([]*model.Comment, int, error) {
	comments, resp, err := c.githubClient.Issues.ListComments(ctx, c.owner, c.repo, number, &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: commentsPerPage,
		},
	})
	if err != nil {
		return nil, 0, c.wrap(err, "failed to list comments",
			goerr.V("number", number),
			goerr.V("page", page),
		)
	}
	logRateLimit(ctx, resp, "list comments")

	result := make([]*model.Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toComment(comment))
	}

	return result, resp.NextPage, nil
}

// CreateComment posts a new issue comment on the pull request
func (c *client) CreateComment(ctx context.Context, number int, body string) (*model.Comment, error) {
	comment, resp, err := c.githubClient.Issues.CreateComment(ctx, c.owner, c.repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, c.wrap(err, "failed to create comment", goerr.V("number", number))
	}
	logRateLimit(ctx, resp, "create comment")

	return toComment(comment), nil
}

// UpdateComment replaces the body of an issue comment
func (c *client) UpdateComment(ctx context.Context, commentID int64, body string) (*model.Comment, error) {
	comment, resp, err := c.githubClient.Issues.EditComment(ctx, c.owner, c.repo, commentID, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, c.wrap(err, "failed to update comment", goerr.V("comment_id", commentID))
	}
	logRateLimit(ctx, resp, "update comment")

	return toComment(comment), nil
}

func (c *client) wrap(err error, msg string, opts ...goerr.Option) error {
	opts = append(opts,
		goerr.T(types.ErrTagCollaborator),
		goerr.V("owner", c.owner),
		goerr.V("repo", c.repo),
	)
	return goerr.Wrap(err, msg, opts...)
}

func toComment(comment *github.IssueComment) *model.Comment {
	return &model.Comment{
		ID:   comment.GetID(),
		Body: comment.GetBody(),
	}
}

func logRateLimit(ctx context.Context, resp *github.Response, endpoint string) {
	if resp == nil {
		return
	}

	logging.From(ctx).Debug("GitHub API call",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)
}
