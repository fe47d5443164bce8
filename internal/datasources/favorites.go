package datasources

import (
	"context"

	"github.com/jbeshir/article-board/internal/domain"
)

type FavoriteRepository interface {
	FavoriteAdder
	FavoriteRemover
	FavoriteArticleLister
	FavoriteChecker
}

// FavoriteAdder is idempotent. It returns domain.ErrNotFound for an unknown article.
type FavoriteAdder interface {
	AddFavorite(ctx context.Context, userID, articleID int64) error
}

// FavoriteRemover returns domain.ErrNotFound when the pair was not a favorite.
type FavoriteRemover interface {
	RemoveFavorite(ctx context.Context, userID, articleID int64) error
}

// FavoriteArticleLister lists favorites in the order they were added.
type FavoriteArticleLister interface {
	ListFavoriteArticles(ctx context.Context, userID int64) ([]domain.Article, error)
}

type FavoriteChecker interface {
	IsFavorite(ctx context.Context, userID, articleID int64) (bool, error)
}
