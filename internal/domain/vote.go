package domain

import "fmt"

// VotableKind is the type of entity that can receive likes and dislikes.
type VotableKind string

const (
	VotableKindArticle VotableKind = "article"
	VotableKindComment VotableKind = "comment"
)

func ParseVotableKind(s string) (VotableKind, bool) {
	switch VotableKind(s) {
	case VotableKindArticle, VotableKindComment:
		return VotableKind(s), true
	default:
		return "", false
	}
}

// VotableRef identifies a single article or comment.
type VotableRef struct {
	Kind VotableKind
	ID   int64
}

func (r VotableRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// Polarity is the direction of a vote.
type Polarity string

const (
	PolarityLike    Polarity = "like"
	PolarityDislike Polarity = "dislike"
)

var Polarities = []Polarity{PolarityLike, PolarityDislike}

func (p Polarity) Opposite() Polarity {
	if p == PolarityLike {
		return PolarityDislike
	}
	return PolarityLike
}

// ParseVoteAction maps the route action token to a polarity.
func ParseVoteAction(action string) (Polarity, bool) {
	switch action {
	case "add_like":
		return PolarityLike, true
	case "add_dislike":
		return PolarityDislike, true
	default:
		return "", false
	}
}

type VoteCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// VoteState is a single user's standing towards a votable entity.
type VoteState string

const (
	VoteStateNeutral  VoteState = "neutral"
	VoteStateLiked    VoteState = "liked"
	VoteStateDisliked VoteState = "disliked"
)

func VoteStateFromMembership(inLikes, inDislikes bool) VoteState {
	switch {
	case inLikes:
		return VoteStateLiked
	case inDislikes:
		return VoteStateDisliked
	default:
		return VoteStateNeutral
	}
}

// NextVoteState applies a vote in the given polarity. Voting the same way
// twice returns to neutral; voting the opposite way switches directly.
func NextVoteState(current VoteState, polarity Polarity) VoteState {
	target := VoteStateLiked
	if polarity == PolarityDislike {
		target = VoteStateDisliked
	}
	if current == target {
		return VoteStateNeutral
	}
	return target
}

// Membership reports which aggregate the user belongs to in a state.
func (s VoteState) Membership() (inLikes, inDislikes bool) {
	return s == VoteStateLiked, s == VoteStateDisliked
}
