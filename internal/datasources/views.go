package datasources

import "context"

// ArticleViewRecorder counts one view per (session, article) pair.
// It reports whether this call was the one that counted the view.
// An empty session id is never counted.
type ArticleViewRecorder interface {
	RecordArticleView(ctx context.Context, articleID int64, sessionID string) (bool, error)
}
