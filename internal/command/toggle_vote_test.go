package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/article-board/internal/datasources/mocks"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleVote_Execute(t *testing.T) {
	articleRef := domain.VotableRef{Kind: domain.VotableKindArticle, ID: 10}
	commentRef := domain.VotableRef{Kind: domain.VotableKindComment, ID: 20}

	cases := []struct {
		name         string
		req          ToggleVoteRequest
		fetchErr     error
		wantToggle   bool
		toggleResult domain.VoteCounts
		toggleErr    error
		wantErr      error
	}{
		{
			name:         "likes_article",
			req:          ToggleVoteRequest{UserID: 1, Ref: articleRef, Polarity: domain.PolarityLike},
			wantToggle:   true,
			toggleResult: domain.VoteCounts{Likes: 1},
		},
		{
			name:         "dislikes_comment",
			req:          ToggleVoteRequest{UserID: 1, Ref: commentRef, Polarity: domain.PolarityDislike},
			wantToggle:   true,
			toggleResult: domain.VoteCounts{Dislikes: 1},
		},
		{
			name:    "anonymous_rejected",
			req:     ToggleVoteRequest{Ref: articleRef, Polarity: domain.PolarityLike},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:     "missing_article",
			req:      ToggleVoteRequest{UserID: 1, Ref: articleRef, Polarity: domain.PolarityLike},
			fetchErr: domain.ErrNotFound,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:    "unknown_kind",
			req:     ToggleVoteRequest{UserID: 1, Ref: domain.VotableRef{Kind: "tag", ID: 1}, Polarity: domain.PolarityLike},
			wantErr: domain.ErrNotFound,
		},
		{
			name:       "store_failure",
			req:        ToggleVoteRequest{UserID: 1, Ref: articleRef, Polarity: domain.PolarityLike},
			wantToggle: true,
			toggleErr:  errors.New("connection reset"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			articles := mocks.NewMockArticleFetcher(t)
			comments := mocks.NewMockCommentFetcher(t)
			toggler := mocks.NewMockVoteToggler(t)

			if tc.req.UserID != 0 {
				switch tc.req.Ref.Kind {
				case domain.VotableKindArticle:
					articles.EXPECT().FetchArticle(mock.Anything, tc.req.Ref.ID).
						Return(domain.Article{ID: tc.req.Ref.ID}, tc.fetchErr)
				case domain.VotableKindComment:
					comments.EXPECT().FetchComment(mock.Anything, tc.req.Ref.ID).
						Return(domain.Comment{ID: tc.req.Ref.ID}, tc.fetchErr)
				}
			}
			if tc.wantToggle {
				toggler.EXPECT().ToggleVote(mock.Anything, tc.req.Ref, tc.req.UserID, tc.req.Polarity).
					Return(tc.toggleResult, tc.toggleErr)
			}

			cmd := NewToggleVote(articles, comments, toggler)
			counts, err := cmd.Execute(testContext(), tc.req)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.toggleErr != nil:
				require.ErrorIs(t, err, tc.toggleErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.toggleResult, counts)
			}
		})
	}
}

func TestToggleVote_CommentLikeThenLikeAgain(t *testing.T) {
	store := newSeededStore(t)
	ctx := testContext()

	commentID, err := store.CreateComment(ctx, store.articleID, store.readerID, "nice")
	require.NoError(t, err)

	cmd := NewToggleVote(store, store, store)
	req := ToggleVoteRequest{
		UserID:   store.readerID,
		Ref:      domain.VotableRef{Kind: domain.VotableKindComment, ID: commentID},
		Polarity: domain.PolarityLike,
	}

	counts, err := cmd.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Likes: 1, Dislikes: 0}, counts)

	counts, err = cmd.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Likes: 0, Dislikes: 0}, counts)

	state, err := store.GetVoteState(ctx, req.Ref, store.readerID)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateNeutral, state)
}

func TestToggleVote_DislikeThenLikeArticle(t *testing.T) {
	store := newSeededStore(t)
	ctx := testContext()
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: store.articleID}

	cmd := NewToggleVote(store, store, store)

	_, err := cmd.Execute(ctx, ToggleVoteRequest{UserID: store.readerID, Ref: ref, Polarity: domain.PolarityDislike})
	require.NoError(t, err)

	counts, err := cmd.Execute(ctx, ToggleVoteRequest{UserID: store.readerID, Ref: ref, Polarity: domain.PolarityLike})
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Likes: 1, Dislikes: 0}, counts)
}

func TestToggleVote_NeverInBothSets(t *testing.T) {
	store := newSeededStore(t)
	ctx := testContext()
	ref := domain.VotableRef{Kind: domain.VotableKindArticle, ID: store.articleID}

	cmd := NewToggleVote(store, store, store)
	sequence := []domain.Polarity{
		domain.PolarityLike, domain.PolarityDislike, domain.PolarityDislike, domain.PolarityLike,
		domain.PolarityLike, domain.PolarityDislike, domain.PolarityLike, domain.PolarityDislike,
	}

	for i, polarity := range sequence {
		for _, userID := range []int64{store.readerID, store.authorID} {
			counts, err := cmd.Execute(ctx, ToggleVoteRequest{UserID: userID, Ref: ref, Polarity: polarity})
			require.NoError(t, err)
			assert.LessOrEqual(t, counts.Likes+counts.Dislikes, int64(2), "step %d", i)
		}

		state, err := store.GetVoteState(ctx, ref, store.readerID)
		require.NoError(t, err)
		assert.Contains(t,
			[]domain.VoteState{domain.VoteStateNeutral, domain.VoteStateLiked, domain.VoteStateDisliked}, state)
	}
}
