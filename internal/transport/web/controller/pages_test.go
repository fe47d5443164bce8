package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/datasources/mocks"
	"github.com/jbeshir/article-board/internal/transport/web/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPages_RenderTemplates runs every page through the real templates.
func TestPages_RenderTemplates(t *testing.T) {
	templates, err := view.New()
	require.NoError(t, err)

	store := newSeededStore(t)
	ctx := storeContext()
	_, err = command.NewCreateComment(store, store).Execute(ctx, command.CreateCommentRequest{
		UserID:    store.readerID,
		ArticleID: store.articleID,
		Body:      "A <b>bold</b> remark",
	})
	require.NoError(t, err)
	require.NoError(t, store.AddFavorite(ctx, store.authorID, store.articleID))

	site := store.site(templates)

	cases := []struct {
		name       string
		handler    http.Handler
		target     string
		vars       map[string]string
		userID     int64
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "home",
			handler:    ArticlesList{Site: site, Lister: command.NewListArticles(store), Mode: ArticlesListHome},
			target:     "/",
			userID:     store.authorID,
			wantStatus: http.StatusOK,
			wantBody:   []string{"First light", "Page 1 of 1", "Remove from favorites", "Log out"},
		},
		{
			name:       "category",
			handler:    ArticlesList{Site: site, Lister: command.NewListArticles(store), Mode: ArticlesListCategory},
			target:     "/categories/1/",
			vars:       map[string]string{"category_id": "1"},
			wantStatus: http.StatusOK,
			wantBody:   []string{"<h1>Science</h1>", "First light", "Log in"},
		},
		{
			name: "article",
			handler: ArticleDetail{
				Site:      site,
				Viewer:    command.NewViewArticle(store, datasources.NullSimilarityRepository{}),
				Commenter: command.NewCreateComment(store, store),
			},
			target:     "/articles/4/",
			vars:       map[string]string{"article_id": "4"},
			userID:     store.authorID,
			wantStatus: http.StatusOK,
			wantBody: []string{
				"First light",
				"A &lt;b&gt;bold&lt;/b&gt; remark",
				"/article/4/add_like/",
				"/article/update/4/",
				"Add comment",
			},
		},
		{
			name:       "login",
			handler:    Login{Site: site, Logger: command.NewLoginUser(store, time.Hour)},
			target:     "/login/?next=/about/",
			wantStatus: http.StatusOK,
			wantBody:   []string{`name="next" value="/about/"`},
		},
		{
			name:       "registration",
			handler:    Registration{Site: site, Registerer: command.NewRegisterUser(store)},
			target:     "/registration/",
			wantStatus: http.StatusOK,
			wantBody:   []string{`name="password2"`},
		},
		{
			name: "article_form",
			handler: ArticleSave{
				Site:    site,
				Fetcher: store,
				Saver:   command.NewSaveArticle(store, mocks.NewMockPhotoStore(t)),
			},
			target:     "/article/update/4/",
			vars:       map[string]string{"article_id": "4"},
			userID:     store.authorID,
			wantStatus: http.StatusOK,
			wantBody:   []string{"Edit article", `value="First light"`, "selected"},
		},
		{
			name:       "article_delete",
			handler:    ArticleDelete{Site: site, Fetcher: store, Deleter: command.NewDeleteArticle(store)},
			target:     "/article/delete/4/",
			vars:       map[string]string{"article_id": "4"},
			userID:     store.authorID,
			wantStatus: http.StatusOK,
			wantBody:   []string{"Are you sure"},
		},
		{
			name:       "profile",
			handler:    Profile{Site: site, Getter: command.NewGetProfile(store)},
			target:     "/profile/author/",
			vars:       map[string]string{"username": "author"},
			wantStatus: http.StatusOK,
			wantBody:   []string{"<h1>author</h1>", "First light"},
		},
		{
			name:       "favorites",
			handler:    FavoritesList{Site: site, Lister: command.NewListFavorites(store)},
			target:     "/profile/author/favorites/",
			vars:       map[string]string{"username": "author"},
			userID:     store.authorID,
			wantStatus: http.StatusOK,
			wantBody:   []string{"Favorites of author", "Remove from favorites"},
		},
		{
			name:       "about",
			handler:    About{Site: site},
			target:     "/about/",
			wantStatus: http.StatusOK,
			wantBody:   []string{"<h1>About</h1>"},
		},
		{
			name:       "not_found",
			handler:    Profile{Site: site, Getter: command.NewGetProfile(store)},
			target:     "/profile/ghost/",
			vars:       map[string]string{"username": "ghost"},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"<h1>404</h1>"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			req = testContextWithSession("session", tc.userID)(req)
			if tc.vars != nil {
				req = mux.SetURLVars(req, tc.vars)
			}
			rec := httptest.NewRecorder()

			tc.handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, want := range tc.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
