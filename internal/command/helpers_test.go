package command

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/article-board/internal/datasources/memory"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

// seededStore holds a category, an author, a reader and one article.
type seededStore struct {
	*memory.Store
	categoryID int64
	authorID   int64
	readerID   int64
	articleID  int64
}

func newSeededStore(t *testing.T) seededStore {
	t.Helper()

	ctx := testContext()
	store := memory.New().WithClock(func() time.Time { return testNow })

	categoryID, err := store.CreateCategory(ctx, "Science")
	require.NoError(t, err)
	authorID, err := store.CreateUser(ctx, "author", "")
	require.NoError(t, err)
	readerID, err := store.CreateUser(ctx, "reader", "")
	require.NoError(t, err)
	articleID, err := store.CreateArticle(ctx, authorID, domain.ArticleInput{
		Title:            "First light",
		ShortDescription: "The first article",
		FullDescription:  "Body",
		CategoryID:       categoryID,
		PhotoPath:        "photos/articles/first.png",
	})
	require.NoError(t, err)

	return seededStore{
		Store:      store,
		categoryID: categoryID,
		authorID:   authorID,
		readerID:   readerID,
		articleID:  articleID,
	}
}
