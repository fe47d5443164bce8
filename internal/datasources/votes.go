package datasources

import (
	"context"

	"github.com/jbeshir/article-board/internal/domain"
)

type VoteRepository interface {
	VoteAggregateEnsurer
	VoteToggler
	VoteCounter
	CommentVoteCounter
	VoteStateGetter
}

// VoteAggregateEnsurer creates the like and dislike aggregates of an entity
// if they do not exist yet. It is safe to call concurrently and repeatedly.
type VoteAggregateEnsurer interface {
	EnsureVoteAggregates(ctx context.Context, ref domain.VotableRef) error
}

// VoteToggler applies a vote atomically and returns the resulting counts.
// Voting in the polarity the user already holds removes the vote; otherwise
// the user joins that aggregate and leaves the opposite one.
type VoteToggler interface {
	ToggleVote(
		ctx context.Context,
		ref domain.VotableRef,
		userID int64,
		polarity domain.Polarity,
	) (domain.VoteCounts, error)
}

// VoteCounter counts voters. Missing aggregates count as zero.
type VoteCounter interface {
	CountVotes(ctx context.Context, ref domain.VotableRef) (domain.VoteCounts, error)
}

type CommentVoteCounter interface {
	CountCommentVotes(ctx context.Context, commentIDs []int64) (map[int64]domain.VoteCounts, error)
}

type VoteStateGetter interface {
	GetVoteState(ctx context.Context, ref domain.VotableRef, userID int64) (domain.VoteState, error)
}
