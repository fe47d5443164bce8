package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources/mocks"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, target string, fields url.Values, photoName string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	if photoName != "" {
		part, err := mw.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = part.Write([]byte("not really a jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func articleFields(title string) url.Values {
	return url.Values{
		"title":             {title},
		"short_description": {"Short"},
		"full_description":  {"Full"},
		"category":          {"1"},
	}
}

func TestArticleSave_Get(t *testing.T) {
	cases := []struct {
		name       string
		articleID  string
		userID     func(s seededStore) int64
		wantStatus int
		wantPage   string
		wantTitle  string
	}{
		{
			name:       "create_form",
			userID:     func(s seededStore) int64 { return s.readerID },
			wantStatus: http.StatusOK,
			wantPage:   "article_form",
		},
		{
			name:       "create_form_anonymous",
			userID:     func(seededStore) int64 { return 0 },
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "update_form_author",
			articleID:  "4",
			userID:     func(s seededStore) int64 { return s.authorID },
			wantStatus: http.StatusOK,
			wantPage:   "article_form",
			wantTitle:  "First light",
		},
		{
			name:       "update_form_other_user",
			articleID:  "4",
			userID:     func(s seededStore) int64 { return s.readerID },
			wantStatus: http.StatusForbidden,
			wantPage:   "error",
		},
		{
			name:       "update_form_unknown_article",
			articleID:  "999",
			userID:     func(s seededStore) int64 { return s.authorID },
			wantStatus: http.StatusNotFound,
			wantPage:   "error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newSeededStore(t)
			renderer := &recordingRenderer{}

			controller := ArticleSave{
				Site:    store.site(renderer),
				Fetcher: store,
				Saver:   command.NewSaveArticle(store, mocks.NewMockPhotoStore(t)),
			}

			target := "/article/create/"
			if tc.articleID != "" {
				target = "/article/update/" + tc.articleID + "/"
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			req = testContextWithUserID(tc.userID(store))(req)
			if tc.articleID != "" {
				req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			}
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantPage, renderer.name)
			if tc.wantPage == "article_form" {
				page, ok := renderer.data.(articleFormPage)
				require.True(t, ok)
				assert.Equal(t, tc.wantTitle, page.Input.Title)
			}
		})
	}
}

func TestArticleSave_CreateWithPhoto(t *testing.T) {
	store := newSeededStore(t)
	renderer := &recordingRenderer{}

	photos := mocks.NewMockPhotoStore(t)
	photos.EXPECT().SavePhoto(mock.Anything, "cover.jpg", mock.Anything).Return("photos/articles/cover-1.jpg", nil)

	controller := ArticleSave{
		Site:    store.site(renderer),
		Fetcher: store,
		Saver:   command.NewSaveArticle(store, photos),
	}

	req := multipartRequest(t, "/article/create/", articleFields("Second light"), "cover.jpg")
	req = testContextWithUserID(store.readerID)(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	articles, err := store.ListArticles(storeContext(), domain.ArticleFilters{AuthorID: store.readerID}, domain.ArticleListOptions{})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Second light", articles[0].Title)
	assert.Equal(t, "photos/articles/cover-1.jpg", articles[0].PhotoPath)
	assert.Equal(t, "/articles/"+strconv.FormatInt(articles[0].ID, 10)+"/", rec.Header().Get("Location"))
}

func TestArticleSave_CreateWithoutPhoto(t *testing.T) {
	store := newSeededStore(t)
	renderer := &recordingRenderer{}

	controller := ArticleSave{
		Site:    store.site(renderer),
		Fetcher: store,
		Saver:   command.NewSaveArticle(store, mocks.NewMockPhotoStore(t)),
	}

	req := multipartRequest(t, "/article/create/", articleFields("Second light"), "")
	req = testContextWithUserID(store.readerID)(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	page, ok := renderer.data.(articleFormPage)
	require.True(t, ok)
	assert.Contains(t, page.Errors, "photo")
	assert.Equal(t, "Second light", page.Input.Title)
}

func TestArticleSave_UpdateKeepsPhoto(t *testing.T) {
	store := newSeededStore(t)

	controller := ArticleSave{
		Site:    store.site(&recordingRenderer{}),
		Fetcher: store,
		Saver:   command.NewSaveArticle(store, mocks.NewMockPhotoStore(t)),
	}

	req := multipartRequest(t, "/article/update/4/", articleFields("Renamed"), "")
	req = testContextWithUserID(store.authorID)(req)
	req = mux.SetURLVars(req, map[string]string{"article_id": "4"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/articles/4/", rec.Header().Get("Location"))

	article, err := store.FetchArticle(storeContext(), store.articleID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", article.Title)
	assert.Equal(t, "photos/articles/first.png", article.PhotoPath)
}

func TestArticleDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		method      string
		userID      func(s seededStore) int64
		wantStatus  int
		wantPage    string
		wantDeleted bool
	}{
		{
			name:       "confirm_page",
			method:     http.MethodGet,
			userID:     func(s seededStore) int64 { return s.authorID },
			wantStatus: http.StatusOK,
			wantPage:   "article_delete",
		},
		{
			name:        "delete",
			method:      http.MethodPost,
			userID:      func(s seededStore) int64 { return s.authorID },
			wantStatus:  http.StatusFound,
			wantDeleted: true,
		},
		{
			name:       "delete_other_user",
			method:     http.MethodPost,
			userID:     func(s seededStore) int64 { return s.readerID },
			wantStatus: http.StatusForbidden,
			wantPage:   "error",
		},
		{
			name:       "confirm_page_other_user",
			method:     http.MethodGet,
			userID:     func(s seededStore) int64 { return s.readerID },
			wantStatus: http.StatusForbidden,
			wantPage:   "error",
		},
		{
			name:       "anonymous",
			method:     http.MethodPost,
			userID:     func(seededStore) int64 { return 0 },
			wantStatus: http.StatusSeeOther,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newSeededStore(t)
			renderer := &recordingRenderer{}

			controller := ArticleDelete{
				Site:    store.site(renderer),
				Fetcher: store,
				Deleter: command.NewDeleteArticle(store),
			}

			req := httptest.NewRequest(tc.method, "/article/delete/4/", nil)
			req = testContextWithUserID(tc.userID(store))(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": "4"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantPage, renderer.name)

			_, err := store.FetchArticle(storeContext(), store.articleID)
			if tc.wantDeleted {
				assert.Equal(t, "/", rec.Header().Get("Location"))
				assert.ErrorIs(t, err, domain.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
