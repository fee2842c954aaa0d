package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/model"
	"github.com/m-mizutani/nextver/pkg/domain/types"
	"github.com/m-mizutani/nextver/pkg/utils/logging"
)

//go:embed templates/status_comment.md
var statusCommentTemplate string

//go:embed templates/summary.md
var summaryTemplate string

var (
	statusComment = template.Must(template.New("status_comment").Parse(statusCommentTemplate))
	summary       = template.Must(template.New("summary").Parse(summaryTemplate))
)

type templateData struct {
	Marker string
	*model.VersionSet
}

func render(tmpl *template.Template, versions *model.VersionSet) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{
		Marker:     model.CommentMarker,
		VersionSet: versions,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render template", goerr.V("template", tmpl.Name()))
	}
	return buf.String(), nil
}

// RenderStatusComment renders the body of the status comment
func RenderStatusComment(versions *model.VersionSet) (string, error) {
	return render(statusComment, versions)
}

// upsertStatusComment updates the comment carrying model.CommentMarker, or
// creates it if the pull request has none
func (uc *bumpUseCase) upsertStatusComment(ctx context.Context, number int, versions *model.VersionSet) error {
	logger := logging.From(ctx)

	body, err := RenderStatusComment(versions)
	if err != nil {
		return err
	}

	existing, err := uc.findStatusComment(ctx, number)
	if err != nil {
		return err
	}

	if existing != nil {
		if _, err := uc.githubClient.UpdateComment(ctx, existing.ID, body); err != nil {
			return err
		}
		logger.Info("Updated status comment", "pull_request", number, "comment_id", existing.ID)
		return nil
	}

	created, err := uc.githubClient.CreateComment(ctx, number, body)
	if err != nil {
		return err
	}
	logger.Info("Created status comment", "pull_request", number, "comment_id", created.ID)
	return nil
}

// findStatusComment walks comment pages until it finds the marker or runs
// out of pages
func (uc *bumpUseCase) findStatusComment(ctx context.Context, number int) (*model.Comment, error) {
	logger := logging.From(ctx)

	for page := 1; page != 0; {
		comments, next, err := uc.githubClient.ListComments(ctx, number, page)
		if err != nil {
			return nil, err
		}
		logger.Debug("Listed comments", "pull_request", number, "page", page, "count", len(comments))

		for _, comment := range comments {
			if strings.Contains(comment.Body, model.CommentMarker) {
				return comment, nil
			}
		}

		if next != 0 && next <= page {
			return nil, goerr.New("comment pagination does not advance",
				goerr.T(types.ErrTagCollaborator),
				goerr.V("page", page),
				goerr.V("next", next),
			)
		}
		page = next
	}

	return nil, nil
}
