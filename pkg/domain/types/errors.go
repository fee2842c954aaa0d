package types

import "github.com/m-mizutani/goerr/v2"

// Error kinds. Every failure that reaches the CLI carries exactly one of
// these tags so callers can tell them apart with goerr.HasTag.
var (
	// ErrTagConfiguration marks a missing or malformed input
	ErrTagConfiguration = goerr.NewTag("configuration_error")

	// ErrTagInvalidLevel marks a resolved level outside of major/minor/patch
	ErrTagInvalidLevel = goerr.NewTag("invalid_level_error")

	// ErrTagNoTag marks a repository without tags and without a fallback tag
	ErrTagNoTag = goerr.NewTag("no_tag_error")

	// ErrTagInvalidVersion marks a tag that is not a semantic version
	ErrTagInvalidVersion = goerr.NewTag("invalid_version_error")

	// ErrTagCollaborator marks a failed or malformed GitHub API call
	ErrTagCollaborator = goerr.NewTag("collaborator_request_error")
)
