package model

// BumpRequest is the resolved configuration of one run
type BumpRequest struct {
	Level       Level  // Explicit level; empty means classify from labels
	PullRequest int    // Pull request number; 0 when the run has none
	FallbackTag string // Used when the repository has no tag
	BuildNumber uint64
	Inform      bool // Upsert the status comment on the pull request
}

// HasPullRequest reports whether a pull request number is available
func (r *BumpRequest) HasPullRequest() bool {
	return r.PullRequest > 0
}
