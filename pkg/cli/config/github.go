package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/interfaces"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	githubinfra "github.com/m-mizutani/nextver/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// tokenEnvVars are the credential variables in order of precedence
var tokenEnvVars = []string{"INPUT_GITHUB_SECRET", "NEXTVER_GITHUB_TOKEN", "GITHUB_TOKEN"}

// GitHub holds GitHub API configuration
type GitHub struct {
	Token      string
	Repository string
	APIURL     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used to read tags and pull requests and to write comments",
			Destination: &c.Token,
			Sources:     cli.EnvVars(tokenEnvVars...),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository (owner/name)",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
	}
}

// credential returns the token given by flag, or else the first credential
// variable that is set to a non-empty value. Declared but empty variables
// are skipped.
func (c *GitHub) credential() string {
	if c.Token != "" {
		return c.Token
	}
	for _, key := range tokenEnvVars {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the credential and the repository are present
func (c *GitHub) Validate() error {
	if c.credential() == "" {
		return goerr.New("missing credential", goerr.T(types.ErrTagConfiguration))
	}
	if _, _, err := c.ownerRepo(); err != nil {
		return err
	}
	return nil
}

// NewClient creates a GitHub client bound to the configured repository
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	owner, repo, _ := c.ownerRepo()

	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}

	return githubinfra.NewClient(c.credential(), owner, repo, opts...)
}

func (c *GitHub) ownerRepo() (string, string, error) {
	parts := strings.SplitN(c.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("repository must be in owner/name form",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("repository", c.Repository),
		)
	}
	return parts[0], parts[1], nil
}
