package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

// ToggleVoteRequest is the request for the ToggleVote command.
type ToggleVoteRequest struct {
	UserID   int64
	Ref      domain.VotableRef
	Polarity domain.Polarity
}

// ToggleVote applies a like or dislike from a user to an article or comment.
type ToggleVote struct {
	ArticleFetcher datasources.ArticleFetcher
	CommentFetcher datasources.CommentFetcher
	Toggler        datasources.VoteToggler
}

func NewToggleVote(
	articleFetcher datasources.ArticleFetcher,
	commentFetcher datasources.CommentFetcher,
	toggler datasources.VoteToggler,
) *ToggleVote {
	return &ToggleVote{
		ArticleFetcher: articleFetcher,
		CommentFetcher: commentFetcher,
		Toggler:        toggler,
	}
}

// Execute returns domain.ErrNotFound when the entity does not exist.
func (c *ToggleVote) Execute(ctx context.Context, req ToggleVoteRequest) (domain.VoteCounts, error) {
	if req.UserID == 0 {
		return domain.VoteCounts{}, domain.ErrUnauthenticated
	}

	if err := c.resolve(ctx, req.Ref); err != nil {
		return domain.VoteCounts{}, err
	}

	counts, err := c.Toggler.ToggleVote(ctx, req.Ref, req.UserID, req.Polarity)
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("toggling %s on %s: %w", req.Polarity, req.Ref, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "toggled vote",
		"ref", req.Ref.String(), "polarity", req.Polarity, "likes", counts.Likes, "dislikes", counts.Dislikes)

	return counts, nil
}

func (c *ToggleVote) resolve(ctx context.Context, ref domain.VotableRef) error {
	var err error
	switch ref.Kind {
	case domain.VotableKindArticle:
		_, err = c.ArticleFetcher.FetchArticle(ctx, ref.ID)
	case domain.VotableKindComment:
		_, err = c.CommentFetcher.FetchComment(ctx, ref.ID)
	default:
		return fmt.Errorf("votable kind %q: %w", ref.Kind, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolving %s: %w", ref, err)
	}
	return nil
}
