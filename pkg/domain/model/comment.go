package model

// CommentMarker is the first line of the status comment. Any comment whose
// body contains it is treated as the status comment of the pull request.
const CommentMarker = "### :label: Semantic version bump"

// Comment is an issue comment on a pull request
type Comment struct {
	ID   int64
	Body string
}
