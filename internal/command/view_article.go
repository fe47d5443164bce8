package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

const similarArticlesCount = 3

// ViewArticleRequest is the request for the ViewArticle command.
type ViewArticleRequest struct {
	ArticleID int64
	SessionID string
	UserID    int64
}

// ArticleDetail is everything the article page shows.
type ArticleDetail struct {
	Article      domain.Article
	Comments     []domain.Comment
	Votes        domain.VoteCounts
	CommentVotes map[int64]domain.VoteCounts
	VoteState    domain.VoteState
	IsFavorite   bool
	Similar      []domain.Article
}

// ViewArticleStore is the storage the ViewArticle command reads and writes.
type ViewArticleStore interface {
	datasources.ArticleFetcher
	datasources.ArticlesByIDFetcher
	datasources.ArticleCommentLister
	datasources.VoteAggregateEnsurer
	datasources.VoteCounter
	datasources.CommentVoteCounter
	datasources.VoteStateGetter
	datasources.ArticleViewRecorder
	datasources.FavoriteChecker
}

// ViewArticle loads an article for display and counts the view once per session.
type ViewArticle struct {
	Store   ViewArticleStore
	Similar datasources.SimilarArticleLister
}

func NewViewArticle(store ViewArticleStore, similar datasources.SimilarArticleLister) *ViewArticle {
	return &ViewArticle{
		Store:   store,
		Similar: similar,
	}
}

func (c *ViewArticle) Execute(ctx context.Context, req ViewArticleRequest) (ArticleDetail, error) {
	logger := domain.LoggerFromContext(ctx).With("article_id", req.ArticleID)
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: req.ArticleID}

	if _, err := c.Store.FetchArticle(ctx, req.ArticleID); err != nil {
		return ArticleDetail{}, fmt.Errorf("fetching article: %w", err)
	}

	if err := c.Store.EnsureVoteAggregates(ctx, ref); err != nil {
		return ArticleDetail{}, fmt.Errorf("ensuring article vote aggregates: %w", err)
	}

	counted, err := c.Store.RecordArticleView(ctx, req.ArticleID, req.SessionID)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("recording article view: %w", err)
	}
	if counted {
		logger.DebugContext(ctx, "counted article view")
	}

	// Refetch so the view count includes this visit.
	article, err := c.Store.FetchArticle(ctx, req.ArticleID)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("fetching article: %w", err)
	}

	detail := ArticleDetail{
		Article:   article,
		VoteState: domain.VoteStateNeutral,
	}

	detail.Comments, err = c.Store.ListArticleComments(ctx, req.ArticleID)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("listing comments: %w", err)
	}

	detail.Votes, err = c.Store.CountVotes(ctx, ref)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("counting article votes: %w", err)
	}

	commentIDs := make([]int64, 0, len(detail.Comments))
	for _, comment := range detail.Comments {
		commentIDs = append(commentIDs, comment.ID)
	}
	detail.CommentVotes, err = c.Store.CountCommentVotes(ctx, commentIDs)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("counting comment votes: %w", err)
	}

	if req.UserID != 0 {
		detail.VoteState, err = c.Store.GetVoteState(ctx, ref, req.UserID)
		if err != nil {
			return ArticleDetail{}, fmt.Errorf("reading vote state: %w", err)
		}

		detail.IsFavorite, err = c.Store.IsFavorite(ctx, req.UserID, req.ArticleID)
		if err != nil {
			return ArticleDetail{}, fmt.Errorf("checking favorite: %w", err)
		}
	}

	detail.Similar = c.similarArticles(ctx, req.ArticleID)

	return detail, nil
}

// similarArticles is best-effort; failures leave the section empty.
func (c *ViewArticle) similarArticles(ctx context.Context, articleID int64) []domain.Article {
	logger := domain.LoggerFromContext(ctx)

	similar, err := c.Similar.ListSimilarArticles(ctx, articleID, similarArticlesCount)
	if err != nil {
		logger.WarnContext(ctx, "unable to list similar articles", "error", err, "article_id", articleID)
		return nil
	}
	if len(similar) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(similar))
	for _, s := range similar {
		ids = append(ids, s.ArticleID)
	}

	articles, err := c.Store.FetchArticlesByID(ctx, ids)
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch similar articles", "error", err, "article_id", articleID)
		return nil
	}
	return articles
}
