package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jbeshir/article-board/internal/domain"
)

const userColumns = "id, username, password_hash, external_subject, date_joined"

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var subject sql.NullString
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &subject, &u.DateJoined); err != nil {
		return domain.User{}, err
	}
	u.ExternalSubject = subject.String
	return u, nil
}

func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, date_joined) VALUES (?, ?, ?)",
		username, passwordHash, r.now(),
	)
	if isDuplicateKey(err) {
		return 0, domain.NewFieldError("username", "A user with that username already exists.")
	}
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return res.LastInsertId()
}

func (r *Repository) getUser(ctx context.Context, where string, arg any) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where+" = ?", arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user [%v]: %w", arg, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return u, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, "username", username)
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *Repository) EnsureExternalUser(ctx context.Context, subject, username string) (int64, error) {
	u, err := r.getUser(ctx, "external_subject", subject)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, external_subject, date_joined) VALUES (?, ?, ?)",
		username, subject, r.now(),
	)
	if isDuplicateKey(err) {
		// Lost a race with a concurrent login for the same subject.
		u, err := r.getUser(ctx, "external_subject", subject)
		if err != nil {
			return 0, fmt.Errorf("re-reading external user: %w", err)
		}
		return u.ID, nil
	}
	if err != nil {
		return 0, fmt.Errorf("inserting external user: %w", err)
	}
	return res.LastInsertId()
}

func (r *Repository) GetAuthorStats(ctx context.Context, authorID int64) (domain.AuthorStats, error) {
	var stats domain.AuthorStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
		    COALESCE((SELECT SUM(views) FROM articles WHERE author_id = ?), 0),
		    (SELECT COUNT(*) FROM comments c JOIN articles a ON a.id = c.article_id WHERE a.author_id = ?)`,
		authorID, authorID,
	).Scan(&stats.TotalViews, &stats.TotalComments)
	if err != nil {
		return domain.AuthorStats{}, fmt.Errorf("computing author stats: %w", err)
	}
	return stats, nil
}
