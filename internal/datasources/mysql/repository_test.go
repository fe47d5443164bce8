package mysql

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	repo      *Repository
	db        *sql.DB
	authorID  int64
	voterID   int64
	otherID   int64
	category  int64
	articleID int64
}

func setupTestDB(t *testing.T) testFixture {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("skipping MySQL integration tests without MYSQL_URI")
	}

	ctx := context.Background()
	db, err := Connect(ctx, uri)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(ctx, db))
	truncateAll(t, db)

	repo := New(db)
	f := testFixture{repo: repo, db: db}

	f.authorID, err = repo.CreateUser(ctx, "author", "hash")
	require.NoError(t, err)
	f.voterID, err = repo.CreateUser(ctx, "voter", "hash")
	require.NoError(t, err)
	f.otherID, err = repo.CreateUser(ctx, "other", "hash")
	require.NoError(t, err)
	f.category, err = repo.CreateCategory(ctx, "Science")
	require.NoError(t, err)
	f.articleID, err = repo.CreateArticle(ctx, f.authorID, domain.ArticleInput{
		Title:            "Refusal in LLMs",
		ShortDescription: "A single direction",
		FullDescription:  "Body text",
		CategoryID:       f.category,
		PhotoPath:        "photos/articles/a.png",
	})
	require.NoError(t, err)

	return f
}

func truncateAll(t *testing.T, db *sql.DB) {
	for _, table := range []string{
		"sessions", "favorite_articles", "article_views", "vote_aggregate_voters",
		"vote_aggregates", "comments", "articles", "categories", "users",
	} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}
}

func teardownTestDB(t *testing.T, f testFixture) {
	truncateAll(t, f.db)
	require.NoError(t, f.db.Close())
}

func TestRepository_ToggleVote(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: f.articleID}

	counts, err := f.repo.ToggleVote(ctx, ref, f.voterID, domain.PolarityLike)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Likes: 1}, counts)

	counts, err = f.repo.ToggleVote(ctx, ref, f.voterID, domain.PolarityDislike)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Dislikes: 1}, counts)

	state, err := f.repo.GetVoteState(ctx, ref, f.voterID)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateDisliked, state)

	counts, err = f.repo.ToggleVote(ctx, ref, f.voterID, domain.PolarityDislike)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{}, counts)

	state, err = f.repo.GetVoteState(ctx, ref, f.voterID)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateNeutral, state)
}

func TestRepository_ToggleVote_UnknownEntity(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	_, err := f.repo.ToggleVote(context.Background(),
		domain.VotableRef{Kind: domain.VotableKindComment, ID: 999999}, f.voterID, domain.PolarityLike)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_ToggleVote_Concurrent(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: f.articleID}

	var wg sync.WaitGroup
	for _, userID := range []int64{f.voterID, f.otherID, f.authorID} {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := f.repo.ToggleVote(ctx, ref, userID, domain.PolarityLike)
			assert.NoError(t, err)
		}(userID)
	}
	wg.Wait()

	counts, err := f.repo.CountVotes(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Likes: 3}, counts)
}

func TestRepository_EnsureVoteAggregates_Idempotent(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: f.articleID}

	require.NoError(t, f.repo.EnsureVoteAggregates(ctx, ref))
	require.NoError(t, f.repo.EnsureVoteAggregates(ctx, ref))

	var n int
	require.NoError(t, f.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM vote_aggregates WHERE article_id = ?", f.articleID).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestRepository_CountCommentVotes(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	first, err := f.repo.CreateComment(ctx, f.articleID, f.voterID, "first")
	require.NoError(t, err)
	second, err := f.repo.CreateComment(ctx, f.articleID, f.otherID, "second")
	require.NoError(t, err)

	_, err = f.repo.ToggleVote(ctx, domain.VotableRef{Kind: domain.VotableKindComment, ID: first},
		f.otherID, domain.PolarityDislike)
	require.NoError(t, err)

	counts, err := f.repo.CountCommentVotes(ctx, []int64{first, second})
	require.NoError(t, err)
	assert.Equal(t, map[int64]domain.VoteCounts{
		first:  {Dislikes: 1},
		second: {},
	}, counts)
}

func TestRepository_RecordArticleView(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()

	counted, err := f.repo.RecordArticleView(ctx, f.articleID, "session-a")
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = f.repo.RecordArticleView(ctx, f.articleID, "session-a")
	require.NoError(t, err)
	assert.False(t, counted)

	counted, err = f.repo.RecordArticleView(ctx, f.articleID, "")
	require.NoError(t, err)
	assert.False(t, counted)

	counted, err = f.repo.RecordArticleView(ctx, f.articleID, "session-b")
	require.NoError(t, err)
	assert.True(t, counted)

	article, err := f.repo.FetchArticle(ctx, f.articleID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Views)

	_, err = f.repo.RecordArticleView(ctx, 999999, "session-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Favorites(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()

	require.NoError(t, f.repo.AddFavorite(ctx, f.voterID, f.articleID))
	require.NoError(t, f.repo.AddFavorite(ctx, f.voterID, f.articleID))

	favs, err := f.repo.ListFavoriteArticles(ctx, f.voterID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, f.articleID, favs[0].ID)

	isFav, err := f.repo.IsFavorite(ctx, f.voterID, f.articleID)
	require.NoError(t, err)
	assert.True(t, isFav)

	require.NoError(t, f.repo.RemoveFavorite(ctx, f.voterID, f.articleID))
	assert.ErrorIs(t, f.repo.RemoveFavorite(ctx, f.voterID, f.articleID), domain.ErrNotFound)
	assert.ErrorIs(t, f.repo.AddFavorite(ctx, f.voterID, 999999), domain.ErrNotFound)
}

func TestRepository_ListArticles(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	for _, title := range []string{"Second", "Third"} {
		_, err := f.repo.CreateArticle(ctx, f.authorID, domain.ArticleInput{
			Title:            title,
			ShortDescription: title + " summary",
			FullDescription:  "Body",
			CategoryID:       f.category,
			PhotoPath:        "photos/articles/b.png",
		})
		require.NoError(t, err)
	}

	cases := []struct {
		name     string
		filters  domain.ArticleFilters
		options  domain.ArticleListOptions
		expected []string
	}{
		{
			name:     "all newest first",
			expected: []string{"Third", "Second", "Refusal in LLMs"},
		},
		{
			name:     "second page",
			options:  domain.ArticleListOptions{Page: 2, PageSize: 2},
			expected: []string{"Refusal in LLMs"},
		},
		{
			name:     "pattern on title",
			filters:  domain.ArticleFilters{Pattern: "^sec"},
			expected: []string{"Second"},
		},
		{
			name:     "pattern on short description",
			filters:  domain.ArticleFilters{Pattern: "DIRECTION"},
			expected: []string{"Refusal in LLMs"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			articles, err := f.repo.ListArticles(ctx, tc.filters, tc.options)
			require.NoError(t, err)

			titles := make([]string, 0, len(articles))
			for _, a := range articles {
				titles = append(titles, a.Title)
			}
			assert.Equal(t, tc.expected, titles)
		})
	}

	total, err := f.repo.TotalMatchingArticles(ctx, domain.ArticleFilters{CategoryID: f.category})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestRepository_ListArticles_InvalidPattern(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	for _, pattern := range []string{"(?P<n>a)", "a{2,1}"} {
		filters := domain.ArticleFilters{Pattern: pattern}

		var verr *domain.ValidationError
		_, err := f.repo.ListArticles(ctx, filters, domain.ArticleListOptions{})
		require.ErrorAs(t, err, &verr, pattern)
		assert.Contains(t, verr.Fields, "q")

		_, err = f.repo.TotalMatchingArticles(ctx, filters)
		require.ErrorAs(t, err, &verr, pattern)
	}
}

func TestRepository_ToggleVote_UnknownUser(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: f.articleID}
	_, err := f.repo.ToggleVote(context.Background(), ref, 999999, domain.PolarityLike)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_CreateArticle_DuplicateTitle(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	_, err := f.repo.CreateArticle(context.Background(), f.authorID, domain.ArticleInput{
		Title:            "Refusal in LLMs",
		ShortDescription: "Again",
		FullDescription:  "Body",
		CategoryID:       f.category,
		PhotoPath:        "photos/articles/c.png",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestRepository_DeleteArticle_Cascades(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	commentID, err := f.repo.CreateComment(ctx, f.articleID, f.voterID, "hello")
	require.NoError(t, err)
	require.NoError(t, f.repo.AddFavorite(ctx, f.voterID, f.articleID))
	_, err = f.repo.ToggleVote(ctx, domain.VotableRef{Kind: domain.VotableKindComment, ID: commentID},
		f.voterID, domain.PolarityLike)
	require.NoError(t, err)

	require.NoError(t, f.repo.DeleteArticle(ctx, f.articleID))

	_, err = f.repo.FetchComment(ctx, commentID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var n int
	require.NoError(t, f.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vote_aggregate_voters").Scan(&n))
	assert.Zero(t, n)

	assert.ErrorIs(t, f.repo.DeleteArticle(ctx, f.articleID), domain.ErrNotFound)
}

func TestRepository_GetAuthorStats(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	_, err := f.repo.RecordArticleView(ctx, f.articleID, "s1")
	require.NoError(t, err)
	_, err = f.repo.CreateComment(ctx, f.articleID, f.voterID, "nice")
	require.NoError(t, err)

	stats, err := f.repo.GetAuthorStats(ctx, f.authorID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuthorStats{TotalViews: 1, TotalComments: 1}, stats)

	stats, err = f.repo.GetAuthorStats(ctx, f.voterID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuthorStats{}, stats)
}

func TestRepository_Sessions(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, f.repo.CreateSession(ctx, domain.Session{
		ID: "live", UserID: f.voterID, CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, f.repo.CreateSession(ctx, domain.Session{
		ID: "stale", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}))

	s, err := f.repo.GetSession(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, f.voterID, s.UserID)

	_, err = f.repo.GetSession(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := f.repo.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, f.repo.DeleteSession(ctx, "live"))
	_, err = f.repo.GetSession(ctx, "live")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_EnsureExternalUser(t *testing.T) {
	f := setupTestDB(t)
	defer teardownTestDB(t, f)

	ctx := context.Background()
	first, err := f.repo.EnsureExternalUser(ctx, "auth0|abc", "auth0-abc")
	require.NoError(t, err)
	second, err := f.repo.EnsureExternalUser(ctx, "auth0|abc", "auth0-abc")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	u, err := f.repo.GetUserByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc", u.ExternalSubject)
}
