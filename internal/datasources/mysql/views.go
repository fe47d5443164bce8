package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jbeshir/article-board/internal/domain"
)

func (r *Repository) RecordArticleView(ctx context.Context, articleID int64, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	var counted bool
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO article_views (article_id, session_id) VALUES (?, ?) "+
				"ON DUPLICATE KEY UPDATE article_id = article_id",
			articleID, sessionID,
		)
		if isMissingReference(err) {
			return fmt.Errorf("article [%d]: %w", articleID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("recording article view: %w", err)
		}

		// One affected row means a new insert; a duplicate reports zero.
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading recorded view count: %w", err)
		}
		if affected != 1 {
			return nil
		}

		if _, err := tx.ExecContext(ctx, "UPDATE articles SET views = views + 1 WHERE id = ?", articleID); err != nil {
			return fmt.Errorf("incrementing article views: %w", err)
		}
		counted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}
