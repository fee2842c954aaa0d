package github

import (
	"context"
	"os"

	"github.com/google/go-github/v82/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

// LoadEvent reads the workflow event payload at path (GITHUB_EVENT_PATH) and
// extracts the pull request number for pull request events. Other events
// only carry their type.
func LoadEvent(ctx context.Context, eventName, path string) (*model.Event, error) {
	logger := logging.From(ctx)

	event := &model.Event{Type: model.EventType(eventName)}
	if eventName == "" {
		event.Type = model.EventTypeUnknown
	}

	if !event.IsPullRequest() {
		logger.Debug("Event does not refer to a pull request", "event_name", eventName)
		return event, nil
	}

	if path == "" {
		return nil, goerr.New("event payload path is required for pull request events",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("event_name", eventName),
		)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("path", path),
		)
	}

	return ParseEvent(eventName, payload)
}

// ParseEvent parses a pull request event payload
func ParseEvent(eventName string, payload []byte) (*model.Event, error) {
	parsed, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid event payload",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("event_name", eventName),
		)
	}

	event := &model.Event{Type: model.EventType(eventName)}

	// Use Get*() helper methods for nil-safe field access
	switch e := parsed.(type) {
	case *github.PullRequestEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.PullRequest = pullRequestNumber(e.GetNumber(), e.GetPullRequest())
	case *github.PullRequestTargetEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.PullRequest = pullRequestNumber(e.GetNumber(), e.GetPullRequest())
	default:
		event.Type = model.EventTypeUnknown
	}

	return event, nil
}

func pullRequestNumber(number int, pr *github.PullRequest) int {
	if number > 0 {
		return number
	}
	return pr.GetNumber()
}
