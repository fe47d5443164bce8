package datasources

import (
	"context"

	"github.com/jbeshir/article-board/internal/domain"
)

// DatasetRepository combines every storage operation the site needs.
type DatasetRepository interface {
	ArticleRepository
	CategoryRepository
	CommentRepository
	VoteRepository
	ArticleViewRecorder
	FavoriteRepository
	UserRepository
	SessionRepository
}

type ArticleRepository interface {
	ArticleLister
	ArticleCounter
	ArticleFetcher
	ArticlesByIDFetcher
	ArticleCreator
	ArticleUpdater
	ArticleDeleter
}

// ArticleLister lists articles matching the filters, newest first.
// A zero PageSize returns every match.
type ArticleLister interface {
	ListArticles(
		ctx context.Context,
		filters domain.ArticleFilters,
		options domain.ArticleListOptions,
	) ([]domain.Article, error)
}

type ArticleCounter interface {
	TotalMatchingArticles(ctx context.Context, filters domain.ArticleFilters) (int64, error)
}

// ArticleFetcher returns domain.ErrNotFound for an unknown id.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, id int64) (domain.Article, error)
}

// ArticlesByIDFetcher returns the articles that exist, in the order of the ids given.
type ArticlesByIDFetcher interface {
	FetchArticlesByID(ctx context.Context, ids []int64) ([]domain.Article, error)
}

// ArticleCreator returns a *domain.ValidationError when the title is taken.
type ArticleCreator interface {
	CreateArticle(ctx context.Context, authorID int64, input domain.ArticleInput) (int64, error)
}

type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, id int64, input domain.ArticleInput) error
}

type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	CategoryLister
	CategoryFetcher
	CategoryCreator
}

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CategoryFetcher interface {
	FetchCategory(ctx context.Context, id int64) (domain.Category, error)
}

type CategoryCreator interface {
	CreateCategory(ctx context.Context, name string) (int64, error)
}

type CommentRepository interface {
	CommentCreator
	CommentFetcher
	ArticleCommentLister
}

type CommentCreator interface {
	CreateComment(ctx context.Context, articleID, authorID int64, body string) (int64, error)
}

type CommentFetcher interface {
	FetchComment(ctx context.Context, id int64) (domain.Comment, error)
}

// ArticleCommentLister lists an article's comments, oldest first.
type ArticleCommentLister interface {
	ListArticleComments(ctx context.Context, articleID int64) ([]domain.Comment, error)
}
