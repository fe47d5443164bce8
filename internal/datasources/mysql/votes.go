package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/article-board/internal/domain"
)

func ownerColumn(kind domain.VotableKind) (string, error) {
	switch kind {
	case domain.VotableKindArticle:
		return "article_id", nil
	case domain.VotableKindComment:
		return "comment_id", nil
	default:
		return "", fmt.Errorf("unknown votable kind %q", kind)
	}
}

func (r *Repository) EnsureVoteAggregates(ctx context.Context, ref domain.VotableRef) error {
	return r.ensureVoteAggregates(ctx, r.db, ref)
}

func (r *Repository) ensureVoteAggregates(ctx context.Context, q dbtx, ref domain.VotableRef) error {
	col, err := ownerColumn(ref.Kind)
	if err != nil {
		return err
	}

	now := r.now()
	for _, polarity := range domain.Polarities {
		_, err := q.ExecContext(ctx,
			"INSERT INTO vote_aggregates ("+col+", polarity, created_at, updated_at) VALUES (?, ?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE id = id",
			ref.ID, string(polarity), now, now,
		)
		if isMissingReference(err) {
			return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("ensuring %s aggregate for %s: %w", polarity, ref, err)
		}
	}
	return nil
}

func (r *Repository) ToggleVote(
	ctx context.Context,
	ref domain.VotableRef,
	userID int64,
	polarity domain.Polarity,
) (domain.VoteCounts, error) {
	// Creating the aggregates outside the transaction keeps the locked
	// section down to rows that already exist.
	if err := r.ensureVoteAggregates(ctx, r.db, ref); err != nil {
		return domain.VoteCounts{}, err
	}

	var counts domain.VoteCounts
	var err error
	for attempt := 1; attempt <= maxDeadlockAttempts; attempt++ {
		err = r.inTx(ctx, func(tx *sql.Tx) error {
			var txErr error
			counts, txErr = r.toggleVoteTx(ctx, tx, ref, userID, polarity)
			return txErr
		})
		if !isDeadlock(err) {
			break
		}
	}
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("toggling vote on %s: %w", ref, err)
	}
	return counts, nil
}

func (r *Repository) toggleVoteTx(
	ctx context.Context,
	tx *sql.Tx,
	ref domain.VotableRef,
	userID int64,
	polarity domain.Polarity,
) (domain.VoteCounts, error) {
	col, err := ownerColumn(ref.Kind)
	if err != nil {
		return domain.VoteCounts{}, err
	}

	aggregateIDs, err := lockAggregates(ctx, tx, col, ref.ID)
	if err != nil {
		return domain.VoteCounts{}, err
	}
	if len(aggregateIDs) != len(domain.Polarities) {
		return domain.VoteCounts{}, fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
	}

	member, err := voterMembership(ctx, tx, col, ref.ID, userID)
	if err != nil {
		return domain.VoteCounts{}, err
	}

	current := domain.VoteStateFromMembership(member[domain.PolarityLike], member[domain.PolarityDislike])
	inLikes, inDislikes := domain.NextVoteState(current, polarity).Membership()
	want := map[domain.Polarity]bool{
		domain.PolarityLike:    inLikes,
		domain.PolarityDislike: inDislikes,
	}

	now := r.now()
	for _, p := range domain.Polarities {
		if want[p] == member[p] {
			continue
		}

		aggregateID := aggregateIDs[p]
		if want[p] {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO vote_aggregate_voters (aggregate_id, user_id) VALUES (?, ?)", aggregateID, userID)
		} else {
			_, err = tx.ExecContext(ctx,
				"DELETE FROM vote_aggregate_voters WHERE aggregate_id = ? AND user_id = ?", aggregateID, userID)
		}
		if isMissingReference(err) {
			return domain.VoteCounts{}, fmt.Errorf("user [%d]: %w", userID, domain.ErrNotFound)
		}
		if err != nil {
			return domain.VoteCounts{}, fmt.Errorf("updating %s voters: %w", p, err)
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE vote_aggregates SET updated_at = ? WHERE id = ?", now, aggregateID); err != nil {
			return domain.VoteCounts{}, fmt.Errorf("touching %s aggregate: %w", p, err)
		}
	}

	return countVotes(ctx, tx, col, ref.ID)
}

func lockAggregates(ctx context.Context, tx *sql.Tx, col string, ownerID int64) (map[domain.Polarity]int64, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, polarity FROM vote_aggregates WHERE "+col+" = ? ORDER BY id FOR UPDATE", ownerID)
	if err != nil {
		return nil, fmt.Errorf("locking vote aggregates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make(map[domain.Polarity]int64, len(domain.Polarities))
	for rows.Next() {
		var id int64
		var polarity string
		if err := rows.Scan(&id, &polarity); err != nil {
			return nil, fmt.Errorf("scanning vote aggregates: %w", err)
		}
		ids[domain.Polarity(polarity)] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return ids, nil
}

func voterMembership(
	ctx context.Context,
	q dbtx,
	col string,
	ownerID, userID int64,
) (map[domain.Polarity]bool, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT a.polarity FROM vote_aggregate_voters v "+
			"JOIN vote_aggregates a ON a.id = v.aggregate_id "+
			"WHERE a."+col+" = ? AND v.user_id = ?",
		ownerID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("reading voter membership: %w", err)
	}
	defer func() { _ = rows.Close() }()

	member := make(map[domain.Polarity]bool, len(domain.Polarities))
	for rows.Next() {
		var polarity string
		if err := rows.Scan(&polarity); err != nil {
			return nil, fmt.Errorf("scanning voter membership: %w", err)
		}
		member[domain.Polarity(polarity)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return member, nil
}

func countVotes(ctx context.Context, q dbtx, col string, ownerID int64) (domain.VoteCounts, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT a.polarity, COUNT(v.user_id) FROM vote_aggregates a "+
			"LEFT JOIN vote_aggregate_voters v ON v.aggregate_id = a.id "+
			"WHERE a."+col+" = ? GROUP BY a.polarity",
		ownerID,
	)
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("counting votes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts domain.VoteCounts
	for rows.Next() {
		var polarity string
		var n int64
		if err := rows.Scan(&polarity, &n); err != nil {
			return domain.VoteCounts{}, fmt.Errorf("scanning vote counts: %w", err)
		}
		addCount(&counts, domain.Polarity(polarity), n)
	}
	if err := rows.Err(); err != nil {
		return domain.VoteCounts{}, fmt.Errorf("iterating rows: %w", err)
	}
	return counts, nil
}

func addCount(counts *domain.VoteCounts, polarity domain.Polarity, n int64) {
	switch polarity {
	case domain.PolarityLike:
		counts.Likes = n
	case domain.PolarityDislike:
		counts.Dislikes = n
	}
}

func (r *Repository) CountVotes(ctx context.Context, ref domain.VotableRef) (domain.VoteCounts, error) {
	col, err := ownerColumn(ref.Kind)
	if err != nil {
		return domain.VoteCounts{}, err
	}
	return countVotes(ctx, r.db, col, ref.ID)
}

func (r *Repository) CountCommentVotes(ctx context.Context, commentIDs []int64) (map[int64]domain.VoteCounts, error) {
	counts := make(map[int64]domain.VoteCounts, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}
	for _, id := range commentIDs {
		counts[id] = domain.VoteCounts{}
	}

	sb := sqlbuilder.Select("a.comment_id", "a.polarity", "COUNT(v.user_id)")
	sb.From("vote_aggregates a")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "vote_aggregate_voters v", "v.aggregate_id = a.id")
	sb.Where(sb.In("a.comment_id", int64sToArgs(commentIDs)...))
	sb.GroupBy("a.comment_id", "a.polarity")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting comment votes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var commentID, n int64
		var polarity string
		if err := rows.Scan(&commentID, &polarity, &n); err != nil {
			return nil, fmt.Errorf("scanning comment vote counts: %w", err)
		}
		c := counts[commentID]
		addCount(&c, domain.Polarity(polarity), n)
		counts[commentID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return counts, nil
}

func (r *Repository) GetVoteState(
	ctx context.Context,
	ref domain.VotableRef,
	userID int64,
) (domain.VoteState, error) {
	if userID == 0 {
		return domain.VoteStateNeutral, nil
	}

	col, err := ownerColumn(ref.Kind)
	if err != nil {
		return "", err
	}

	member, err := voterMembership(ctx, r.db, col, ref.ID, userID)
	if err != nil {
		return "", err
	}
	return domain.VoteStateFromMembership(member[domain.PolarityLike], member[domain.PolarityDislike]), nil
}
