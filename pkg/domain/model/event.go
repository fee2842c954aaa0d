package model

// EventType is the name of the workflow event that triggered the run
type EventType string

const (
	EventTypePullRequest       EventType = "pull_request"
	EventTypePullRequestTarget EventType = "pull_request_target"
	EventTypeUnknown           EventType = "unknown"
)

// Event holds what nextver needs from the triggering workflow event
type Event struct {
	Type        EventType
	Action      string // e.g. opened, labeled
	Repository  string // owner/name of the base repository
	PullRequest int    // 0 unless Type is a pull request event
}

// IsPullRequest checks if the event was raised for a pull request
func (e *Event) IsPullRequest() bool {
	switch e.Type {
	case EventTypePullRequest, EventTypePullRequestTarget:
		return true
	default:
		return false
	}
}
