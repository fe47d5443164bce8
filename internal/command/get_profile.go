package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

type ProfileStore interface {
	datasources.UserByUsernameGetter
	datasources.AuthorStatsGetter
	datasources.ArticleLister
}

// GetProfile builds the public profile of a user.
type GetProfile struct {
	Store ProfileStore
	Now   func() time.Time
}

func NewGetProfile(store ProfileStore) *GetProfile {
	return &GetProfile{
		Store: store,
		Now:   time.Now,
	}
}

func (c *GetProfile) Execute(ctx context.Context, username string) (domain.Profile, error) {
	user, err := c.Store.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetching user: %w", err)
	}

	stats, err := c.Store.GetAuthorStats(ctx, user.ID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetching author stats: %w", err)
	}

	articles, err := c.Store.ListArticles(ctx,
		domain.ArticleFilters{AuthorID: user.ID}, domain.ArticleListOptions{})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("listing author articles: %w", err)
	}

	return domain.Profile{
		User:           user,
		ExperienceDays: domain.ExperienceDays(user.DateJoined, c.Now()),
		Stats:          stats,
		Articles:       articles,
	}, nil
}

type FavoritesStore interface {
	datasources.UserByUsernameGetter
	datasources.FavoriteArticleLister
}

// ListFavorites returns a user's favorite articles in the order they were added.
type ListFavorites struct {
	Store FavoritesStore
}

func NewListFavorites(store FavoritesStore) *ListFavorites {
	return &ListFavorites{Store: store}
}

// FavoritesResult is the result of the ListFavorites command.
type FavoritesResult struct {
	User     domain.User
	Articles []domain.Article
}

func (c *ListFavorites) Execute(ctx context.Context, username string) (FavoritesResult, error) {
	user, err := c.Store.GetUserByUsername(ctx, username)
	if err != nil {
		return FavoritesResult{}, fmt.Errorf("fetching user: %w", err)
	}

	articles, err := c.Store.ListFavoriteArticles(ctx, user.ID)
	if err != nil {
		return FavoritesResult{}, fmt.Errorf("listing favorite articles: %w", err)
	}

	return FavoritesResult{User: user, Articles: articles}, nil
}
