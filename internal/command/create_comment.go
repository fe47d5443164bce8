package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

// CreateCommentRequest is the request for the CreateComment command.
type CreateCommentRequest struct {
	UserID    int64
	ArticleID int64
	Body      string
}

type CreateComment struct {
	Creator datasources.CommentCreator
	Ensurer datasources.VoteAggregateEnsurer
}

func NewCreateComment(creator datasources.CommentCreator, ensurer datasources.VoteAggregateEnsurer) *CreateComment {
	return &CreateComment{
		Creator: creator,
		Ensurer: ensurer,
	}
}

// Execute returns the new comment's id.
func (c *CreateComment) Execute(ctx context.Context, req CreateCommentRequest) (int64, error) {
	if req.UserID == 0 {
		return 0, domain.ErrUnauthenticated
	}
	if err := domain.ValidateCommentBody(req.Body); err != nil {
		return 0, err
	}

	id, err := c.Creator.CreateComment(ctx, req.ArticleID, req.UserID, strings.TrimSpace(req.Body))
	if err != nil {
		return 0, fmt.Errorf("creating comment: %w", err)
	}

	ref := domain.VotableRef{Kind: domain.VotableKindComment, ID: id}
	if err := c.Ensurer.EnsureVoteAggregates(ctx, ref); err != nil {
		return 0, fmt.Errorf("ensuring comment vote aggregates: %w", err)
	}

	return id, nil
}
