package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

// PhotoUpload is an uploaded image file.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// SaveArticleRequest is the request for the SaveArticle command. A zero
// ArticleID creates a new article.
type SaveArticleRequest struct {
	UserID    int64
	ArticleID int64
	Input     domain.ArticleInput
	Photo     *PhotoUpload
}

type SaveArticleStore interface {
	datasources.ArticleFetcher
	datasources.ArticleCreator
	datasources.ArticleUpdater
	datasources.CategoryFetcher
}

// SaveArticle creates an article or updates one the user wrote.
type SaveArticle struct {
	Store  SaveArticleStore
	Photos datasources.PhotoStore
}

func NewSaveArticle(store SaveArticleStore, photos datasources.PhotoStore) *SaveArticle {
	return &SaveArticle{
		Store:  store,
		Photos: photos,
	}
}

// Execute returns the article id.
func (c *SaveArticle) Execute(ctx context.Context, req SaveArticleRequest) (int64, error) {
	if req.UserID == 0 {
		return 0, domain.ErrUnauthenticated
	}

	creating := req.ArticleID == 0
	if !creating {
		if err := authorizeArticleChange(ctx, c.Store, req.ArticleID, req.UserID); err != nil {
			return 0, err
		}
	}

	input := req.Input
	validated := input
	if req.Photo != nil {
		validated.PhotoPath = req.Photo.Filename
	}
	if err := validated.Validate(creating); err != nil {
		return 0, err
	}

	if _, err := c.Store.FetchCategory(ctx, input.CategoryID); errors.Is(err, domain.ErrNotFound) {
		return 0, domain.NewFieldError("category", "Select a valid choice. That choice is not one of the available choices.")
	} else if err != nil {
		return 0, fmt.Errorf("fetching category: %w", err)
	}

	input.PhotoPath = ""
	if req.Photo != nil {
		path, err := c.Photos.SavePhoto(ctx, req.Photo.Filename, req.Photo.Content)
		if err != nil {
			return 0, fmt.Errorf("saving photo: %w", err)
		}
		input.PhotoPath = path
	}

	if creating {
		id, err := c.Store.CreateArticle(ctx, req.UserID, input)
		if err != nil {
			return 0, fmt.Errorf("creating article: %w", err)
		}
		domain.LoggerFromContext(ctx).InfoContext(ctx, "created article", "article_id", id)
		return id, nil
	}

	if err := c.Store.UpdateArticle(ctx, req.ArticleID, input); err != nil {
		return 0, fmt.Errorf("updating article: %w", err)
	}
	return req.ArticleID, nil
}

// DeleteArticleRequest is the request for the DeleteArticle command.
type DeleteArticleRequest struct {
	UserID    int64
	ArticleID int64
}

type DeleteArticleStore interface {
	datasources.ArticleFetcher
	datasources.ArticleDeleter
}

// DeleteArticle removes an article the user wrote, along with its comments,
// votes, views and favorites.
type DeleteArticle struct {
	Store DeleteArticleStore
}

func NewDeleteArticle(store DeleteArticleStore) *DeleteArticle {
	return &DeleteArticle{Store: store}
}

func (c *DeleteArticle) Execute(ctx context.Context, req DeleteArticleRequest) (Empty, error) {
	if req.UserID == 0 {
		return Empty{}, domain.ErrUnauthenticated
	}
	if err := authorizeArticleChange(ctx, c.Store, req.ArticleID, req.UserID); err != nil {
		return Empty{}, err
	}

	if err := c.Store.DeleteArticle(ctx, req.ArticleID); err != nil {
		return Empty{}, fmt.Errorf("deleting article: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "deleted article", "article_id", req.ArticleID)
	return Empty{}, nil
}

// AuthorizeArticleChange returns the article when userID wrote it, and
// domain.ErrForbidden otherwise.
func AuthorizeArticleChange(
	ctx context.Context,
	fetcher datasources.ArticleFetcher,
	articleID, userID int64,
) (domain.Article, error) {
	if userID == 0 {
		return domain.Article{}, domain.ErrUnauthenticated
	}

	article, err := fetcher.FetchArticle(ctx, articleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}
	if article.AuthorID != userID {
		return domain.Article{}, fmt.Errorf("user [%d] changing article [%d]: %w", userID, articleID, domain.ErrForbidden)
	}
	return article, nil
}

func authorizeArticleChange(ctx context.Context, fetcher datasources.ArticleFetcher, articleID, userID int64) error {
	_, err := AuthorizeArticleChange(ctx, fetcher, articleID, userID)
	return err
}
