package app

import (
	"context"
	"time"

	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
)

// SessionReaper periodically deletes expired sessions until its context ends.
type SessionReaper struct {
	Reaper   command.Command[command.Empty, int64]
	Interval time.Duration
}

func (s *SessionReaper) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		deleted, err := s.Reaper.Execute(ctx, command.Empty{})
		if err != nil {
			// A failed sweep is retried on the next tick.
			logger.WarnContext(ctx, "unable to delete expired sessions", "error", err)
			continue
		}
		if deleted > 0 {
			logger.InfoContext(ctx, "deleted expired sessions", "count", deleted)
		}
	}
}
