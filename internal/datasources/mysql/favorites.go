package mysql

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/domain"
)

func (r *Repository) AddFavorite(ctx context.Context, userID, articleID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO favorite_articles (user_id, article_id, created_at) VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE user_id = user_id",
		userID, articleID, r.now(),
	)
	if isMissingReference(err) {
		return fmt.Errorf("favorite of article [%d] by user [%d]: %w", articleID, userID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID, articleID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorite_articles WHERE user_id = ? AND article_id = ?", userID, articleID)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading removed favorite count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("favorite of article [%d] by user [%d]: %w", articleID, userID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListFavoriteArticles(ctx context.Context, userID int64) ([]domain.Article, error) {
	sb := selectArticles()
	sb.Join("favorite_articles f", "f.article_id = a.id")
	sb.Where(sb.Equal("f.user_id", userID))
	sb.OrderBy("f.created_at", "a.id")

	query, args := sb.Build()
	articles, err := r.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing favorite articles: %w", err)
	}
	return articles, nil
}

func (r *Repository) IsFavorite(ctx context.Context, userID, articleID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favorite_articles WHERE user_id = ? AND article_id = ?)",
		userID, articleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return exists, nil
}
