package config

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Bump holds the inputs of a version bump. Numbers and toggles are kept as
// text because action inputs always arrive as strings.
type Bump struct {
	FallbackTag   string
	BuildNumber   string
	DisableInform string
	Level         string
	PullRequest   string
}

// Flags returns CLI flags for bump configuration
func (c *Bump) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "fallback-tag",
			Usage:       "Version used when the repository has no tag",
			Destination: &c.FallbackTag,
			Sources:     cli.EnvVars("INPUT_FALLBACK_TAG"),
		},
		&cli.StringFlag{
			Name:        "build-number",
			Usage:       "Build number put into the pre-release version",
			Destination: &c.BuildNumber,
			Sources:     cli.EnvVars("INPUT_BUILD_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "disable-inform",
			Usage:       `Set to "true" to skip the status comment on the pull request`,
			Value:       "false",
			Destination: &c.DisableInform,
			Sources:     cli.EnvVars("INPUT_DISABLE_INFORM"),
		},
		&cli.StringFlag{
			Name:        "level",
			Usage:       "Increment level (major, minor, patch); pull request labels are used when empty",
			Destination: &c.Level,
			Sources:     cli.EnvVars("INPUT_LEVEL"),
		},
		&cli.StringFlag{
			Name:        "pr-number",
			Usage:       "Pull request number; read from the event payload when empty",
			Destination: &c.PullRequest,
			Sources:     cli.EnvVars("INPUT_PR_NUMBER"),
		},
	}
}

// HasPullRequest reports whether the pull request number is set explicitly
func (c *Bump) HasPullRequest() bool {
	return strings.TrimSpace(c.PullRequest) != ""
}

// Request builds the BumpRequest. The pull request number of event is used
// unless one was given explicitly. event may be nil.
func (c *Bump) Request(event *model.Event) (*model.BumpRequest, error) {
	buildNumber, err := parseBuildNumber(c.BuildNumber)
	if err != nil {
		return nil, err
	}

	pullRequest, err := parsePullRequest(c.PullRequest)
	if err != nil {
		return nil, err
	}
	if pullRequest == 0 && event != nil {
		pullRequest = event.PullRequest
	}

	return &model.BumpRequest{
		Level:       model.Level(strings.TrimSpace(c.Level)),
		PullRequest: pullRequest,
		FallbackTag: c.FallbackTag,
		BuildNumber: buildNumber,
		Inform:      c.DisableInform != "true",
	}, nil
}

func parseBuildNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "build number must be a non-negative integer",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("build_number", s),
		)
	}
	return n, nil
}

func parsePullRequest(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, goerr.New("pull request number must be a positive integer",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("pr_number", s),
		)
	}
	return n, nil
}
