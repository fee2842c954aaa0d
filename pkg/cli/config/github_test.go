package config_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/nextver/pkg/cli/config"
	"github.com/m-mizutani/nextver/pkg/domain/types"
)

func clearTokenEnv(t *testing.T) {
	for _, key := range []string{"INPUT_GITHUB_SECRET", "NEXTVER_GITHUB_TOKEN", "GITHUB_TOKEN"} {
		t.Setenv(key, "")
	}
}

func TestGitHub_Validate(t *testing.T) {
	clearTokenEnv(t)

	tests := []struct {
		name    string
		cfg     config.GitHub
		wantErr string
	}{
		{name: "valid", cfg: config.GitHub{Token: "t", Repository: "owner/repo"}},
		{name: "missing credential", cfg: config.GitHub{Repository: "owner/repo"}, wantErr: "missing credential"},
		{name: "missing repository", cfg: config.GitHub{Token: "t"}, wantErr: "owner/name"},
		{name: "repository without owner", cfg: config.GitHub{Token: "t", Repository: "/repo"}, wantErr: "owner/name"},
		{name: "repository without name", cfg: config.GitHub{Token: "t", Repository: "owner"}, wantErr: "owner/name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
			gt.String(t, err.Error()).Contains(tt.wantErr)
		})
	}
}

func TestGitHub_Validate_SkipsEmptyTokenVariables(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("INPUT_GITHUB_SECRET", "")
	t.Setenv("GITHUB_TOKEN", "env-token")

	// INPUT_GITHUB_SECRET is present but empty, so the flag value stays empty
	cfg := config.GitHub{Repository: "owner/repo"}
	gt.NoError(t, cfg.Validate())
}

func TestGitHub_Validate_TokenPrecedence(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("NEXTVER_GITHUB_TOKEN", "nextver-token")
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := config.GitHub{Repository: "owner/repo"}
	gt.Equal(t, config.Credential(&cfg), "nextver-token")

	cfg.Token = "flag-token"
	gt.Equal(t, config.Credential(&cfg), "flag-token")
}

func TestGitHub_NewClient(t *testing.T) {
	clearTokenEnv(t)

	cfg := config.GitHub{Token: "t", Repository: "owner/repo", APIURL: "https://ghe.example.com/api/v3"}
	client, err := cfg.NewClient()
	gt.NoError(t, err)
	gt.Value(t, client).NotNil()

	_, err = (&config.GitHub{Repository: "owner/repo"}).NewClient()
	gt.Error(t, err)
}
