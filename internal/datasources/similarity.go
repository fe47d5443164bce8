package datasources

import (
	"context"

	"github.com/jbeshir/article-board/internal/domain"
)

type SimilarArticleLister interface {
	ListSimilarArticles(
		ctx context.Context,
		articleID int64,
		count int,
	) ([]domain.SimilarArticle, error)
}

// NullSimilarityRepository is a null implementation of SimilarArticleLister.
type NullSimilarityRepository struct{}

var _ SimilarArticleLister = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarArticles(
	_ context.Context,
	_ int64,
	_ int,
) ([]domain.SimilarArticle, error) {
	return nil, nil
}
