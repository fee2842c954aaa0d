package github_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	githubcontroller "github.com/m-mizutani/nextver/pkg/controller/github"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
)

const pullRequestPayload = `{
	"action": "labeled",
	"number": 42,
	"pull_request": {"number": 42, "labels": [{"name": "minor"}]},
	"repository": {"name": "repo", "full_name": "owner/repo", "owner": {"login": "owner"}}
}`

func writePayload(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	gt.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestLoadEvent_PullRequest(t *testing.T) {
	for _, name := range []string{"pull_request", "pull_request_target"} {
		t.Run(name, func(t *testing.T) {
			event, err := githubcontroller.LoadEvent(context.Background(), name, writePayload(t, pullRequestPayload))
			gt.NoError(t, err)
			gt.Equal(t, event.Type, model.EventType(name))
			gt.Equal(t, event.Action, "labeled")
			gt.Equal(t, event.Repository, "owner/repo")
			gt.Equal(t, event.PullRequest, 42)
			gt.True(t, event.IsPullRequest())
		})
	}
}

func TestLoadEvent_NumberFromPullRequestObject(t *testing.T) {
	payload := `{"action": "opened", "pull_request": {"number": 7}}`

	event, err := githubcontroller.LoadEvent(context.Background(), "pull_request", writePayload(t, payload))
	gt.NoError(t, err)
	gt.Equal(t, event.PullRequest, 7)
}

func TestLoadEvent_NotPullRequest(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		wantType  model.EventType
	}{
		{name: "push", eventName: "push", wantType: model.EventType("push")},
		{name: "workflow_dispatch", eventName: "workflow_dispatch", wantType: model.EventType("workflow_dispatch")},
		{name: "no event name", eventName: "", wantType: model.EventTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The payload is never read for events without a pull request
			event, err := githubcontroller.LoadEvent(context.Background(), tt.eventName, "/does/not/exist")
			gt.NoError(t, err)
			gt.Equal(t, event.Type, tt.wantType)
			gt.Equal(t, event.PullRequest, 0)
		})
	}
}

func TestLoadEvent_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := githubcontroller.LoadEvent(context.Background(), "pull_request", "")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := githubcontroller.LoadEvent(context.Background(), "pull_request", filepath.Join(t.TempDir(), "missing.json"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	t.Run("broken JSON", func(t *testing.T) {
		_, err := githubcontroller.LoadEvent(context.Background(), "pull_request", writePayload(t, "{"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})
}
