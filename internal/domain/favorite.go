package domain

import "time"

// FavoriteArticle is a user's bookmark of an article.
type FavoriteArticle struct {
	UserID    int64
	ArticleID int64
	CreatedAt time.Time
}
