package command

import (
	"strings"
	"testing"

	"github.com/jbeshir/article-board/internal/datasources/mocks"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validArticleInput(categoryID int64) domain.ArticleInput {
	return domain.ArticleInput{
		Title:            "Fresh article",
		ShortDescription: "Summary",
		FullDescription:  "Body",
		CategoryID:       categoryID,
	}
}

func TestSaveArticle_Create(t *testing.T) {
	store := newSeededStore(t)
	ctx := testContext()

	photos := mocks.NewMockPhotoStore(t)
	photos.EXPECT().SavePhoto(mock.Anything, "cover.jpg", mock.Anything).Return("photos/articles/abc.jpg", nil)

	id, err := NewSaveArticle(store, photos).Execute(ctx, SaveArticleRequest{
		UserID: store.readerID,
		Input:  validArticleInput(store.categoryID),
		Photo:  &PhotoUpload{Filename: "cover.jpg", Content: strings.NewReader("jpeg")},
	})
	require.NoError(t, err)

	article, err := store.FetchArticle(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fresh article", article.Title)
	assert.Equal(t, "photos/articles/abc.jpg", article.PhotoPath)
	assert.Equal(t, store.readerID, article.AuthorID)
}

func TestSaveArticle_CreateRequiresPhoto(t *testing.T) {
	store := newSeededStore(t)
	photos := mocks.NewMockPhotoStore(t)

	_, err := NewSaveArticle(store, photos).Execute(testContext(), SaveArticleRequest{
		UserID: store.readerID,
		Input:  validArticleInput(store.categoryID),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "photo")
}

func TestSaveArticle_UnknownCategory(t *testing.T) {
	store := newSeededStore(t)
	photos := mocks.NewMockPhotoStore(t)

	_, err := NewSaveArticle(store, photos).Execute(testContext(), SaveArticleRequest{
		UserID: store.readerID,
		Input:  validArticleInput(9999),
		Photo:  &PhotoUpload{Filename: "cover.jpg", Content: strings.NewReader("jpeg")},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
}

func TestSaveArticle_DuplicateTitle(t *testing.T) {
	store := newSeededStore(t)

	photos := mocks.NewMockPhotoStore(t)
	photos.EXPECT().SavePhoto(mock.Anything, "cover.jpg", mock.Anything).Return("photos/articles/abc.jpg", nil)

	input := validArticleInput(store.categoryID)
	input.Title = "First light"

	_, err := NewSaveArticle(store, photos).Execute(testContext(), SaveArticleRequest{
		UserID: store.readerID,
		Input:  input,
		Photo:  &PhotoUpload{Filename: "cover.jpg", Content: strings.NewReader("jpeg")},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestSaveArticle_UpdateKeepsPhoto(t *testing.T) {
	store := newSeededStore(t)
	ctx := testContext()
	photos := mocks.NewMockPhotoStore(t)

	input := validArticleInput(store.categoryID)
	input.Title = "Renamed"

	id, err := NewSaveArticle(store, photos).Execute(ctx, SaveArticleRequest{
		UserID:    store.authorID,
		ArticleID: store.articleID,
		Input:     input,
	})
	require.NoError(t, err)
	assert.Equal(t, store.articleID, id)

	article, err := store.FetchArticle(ctx, store.articleID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", article.Title)
	assert.Equal(t, "photos/articles/first.png", article.PhotoPath)
}

func TestSaveArticle_UpdateByOtherUser(t *testing.T) {
	store := newSeededStore(t)
	photos := mocks.NewMockPhotoStore(t)

	_, err := NewSaveArticle(store, photos).Execute(testContext(), SaveArticleRequest{
		UserID:    store.readerID,
		ArticleID: store.articleID,
		Input:     validArticleInput(store.categoryID),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteArticle_Execute(t *testing.T) {
	cases := []struct {
		name      string
		userID    func(s seededStore) int64
		articleID func(s seededStore) int64
		wantErr   error
	}{
		{
			name:      "author_deletes",
			userID:    func(s seededStore) int64 { return s.authorID },
			articleID: func(s seededStore) int64 { return s.articleID },
		},
		{
			name:      "other_user_forbidden",
			userID:    func(s seededStore) int64 { return s.readerID },
			articleID: func(s seededStore) int64 { return s.articleID },
			wantErr:   domain.ErrForbidden,
		},
		{
			name:      "anonymous",
			userID:    func(seededStore) int64 { return 0 },
			articleID: func(s seededStore) int64 { return s.articleID },
			wantErr:   domain.ErrUnauthenticated,
		},
		{
			name:      "missing_article",
			userID:    func(s seededStore) int64 { return s.authorID },
			articleID: func(seededStore) int64 { return 9999 },
			wantErr:   domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newSeededStore(t)
			ctx := testContext()

			_, err := NewDeleteArticle(store).Execute(ctx, DeleteArticleRequest{
				UserID:    tc.userID(store),
				ArticleID: tc.articleID(store),
			})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			_, err = store.FetchArticle(ctx, store.articleID)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}
