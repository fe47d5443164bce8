package controller

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jbeshir/article-board/internal/datasources/memory"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID int64) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func testContextWithSession(sessionID string, userID int64) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithSessionID(ctx, sessionID)
		if userID != 0 {
			ctx = domain.ContextWithUserID(ctx, userID)
		}
		return r.WithContext(ctx)
	}
}

func storeContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

// recordingRenderer keeps the last page rendered instead of executing templates.
type recordingRenderer struct {
	name   string
	status int
	data   any
}

func (r *recordingRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	r.name = name
	r.status = status
	r.data = data
	w.WriteHeader(status)
	return nil
}

// seededStore holds a category, an author with a password, a reader and
// one article.
type seededStore struct {
	*memory.Store
	categoryID int64
	authorID   int64
	readerID   int64
	articleID  int64
}

const testPassword = "correct horse"

func newSeededStore(t *testing.T) seededStore {
	t.Helper()

	ctx := storeContext()
	store := memory.New().WithClock(func() time.Time { return testNow })

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	categoryID, err := store.CreateCategory(ctx, "Science")
	require.NoError(t, err)
	authorID, err := store.CreateUser(ctx, "author", string(hash))
	require.NoError(t, err)
	readerID, err := store.CreateUser(ctx, "reader", string(hash))
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

func (s seededStore) site(renderer Renderer) Site {
	return Site{Renderer: renderer, Categories: s.Store, Users: s.Store}
}
