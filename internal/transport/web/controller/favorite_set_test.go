package controller

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		remove       bool
		seedFavorite bool
		owner        func(s seededStore) int64
		actor        func(s seededStore) int64
		articleID    string
		wantStatus   int
		wantFavorite bool
	}{
		{
			name:         "add",
			owner:        func(s seededStore) int64 { return s.readerID },
			actor:        func(s seededStore) int64 { return s.readerID },
			articleID:    "4",
			wantStatus:   http.StatusFound,
			wantFavorite: true,
		},
		{
			name:         "add_twice",
			seedFavorite: true,
			owner:        func(s seededStore) int64 { return s.readerID },
			actor:        func(s seededStore) int64 { return s.readerID },
			articleID:    "4",
			wantStatus:   http.StatusFound,
			wantFavorite: true,
		},
		{
			name:         "remove",
			remove:       true,
			seedFavorite: true,
			owner:        func(s seededStore) int64 { return s.readerID },
			actor:        func(s seededStore) int64 { return s.readerID },
			articleID:    "4",
			wantStatus:   http.StatusFound,
			wantFavorite: false,
		},
		{
			name:       "remove_missing",
			remove:     true,
			owner:      func(s seededStore) int64 { return s.readerID },
			actor:      func(s seededStore) int64 { return s.readerID },
			articleID:  "4",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "other_users_favorites",
			owner:      func(s seededStore) int64 { return s.authorID },
			actor:      func(s seededStore) int64 { return s.readerID },
			articleID:  "4",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "anonymous",
			owner:      func(s seededStore) int64 { return s.readerID },
			actor:      func(seededStore) int64 { return 0 },
			articleID:  "4",
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "unknown_article",
			owner:      func(s seededStore) int64 { return s.readerID },
			actor:      func(s seededStore) int64 { return s.readerID },
			articleID:  "999",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newSeededStore(t)
			if tc.seedFavorite {
				require.NoError(t, store.AddFavorite(storeContext(), store.readerID, store.articleID))
			}

			var setter FavoriteSet
			setter.Site = store.site(&recordingRenderer{})
			if tc.remove {
				setter.Setter = command.NewRemoveFavorite(store)
			} else {
				setter.Setter = command.NewAddFavorite(store)
			}

			owner := strconv.FormatInt(tc.owner(store), 10)
			req := httptest.NewRequest(http.MethodGet, "/"+owner+"/favorites/add/"+tc.articleID+"/", nil)
			req.Header.Set("Referer", "http://example.com/articles/4/")
			req = testContextWithUserID(tc.actor(store))(req)
			req = mux.SetURLVars(req, map[string]string{"user_id": owner, "article_id": tc.articleID})
			rec := httptest.NewRecorder()

			setter.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusFound {
				assert.Equal(t, "/articles/4/", rec.Header().Get("Location"))
			}

			isFavorite, err := store.IsFavorite(storeContext(), store.readerID, store.articleID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFavorite, isFavorite)
		})
	}
}
