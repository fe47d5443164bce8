package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

type SessionStore interface {
	datasources.SessionGetter
	datasources.SessionCreator
}

// EnsureSession returns the live session with the given id, or starts a new
// anonymous one when the id is empty, unknown or expired.
type EnsureSession struct {
	Store SessionStore
	TTL   time.Duration
	Now   func() time.Time
}

func NewEnsureSession(store SessionStore, ttl time.Duration) *EnsureSession {
	return &EnsureSession{
		Store: store,
		TTL:   ttl,
		Now:   time.Now,
	}
}

func (c *EnsureSession) Execute(ctx context.Context, sessionID string) (domain.Session, error) {
	if sessionID != "" {
		session, err := c.Store.GetSession(ctx, sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("fetching session: %w", err)
		}
	}

	now := c.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(c.TTL),
	}
	if err := c.Store.CreateSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

// LogoutUser ends a session.
type LogoutUser struct {
	Deleter datasources.SessionDeleter
}

func NewLogoutUser(deleter datasources.SessionDeleter) *LogoutUser {
	return &LogoutUser{Deleter: deleter}
}

func (c *LogoutUser) Execute(ctx context.Context, sessionID string) (Empty, error) {
	if sessionID == "" {
		return Empty{}, nil
	}
	if err := c.Deleter.DeleteSession(ctx, sessionID); err != nil {
		return Empty{}, fmt.Errorf("deleting session: %w", err)
	}
	return Empty{}, nil
}

// ReapExpiredSessions deletes sessions that expired before now.
type ReapExpiredSessions struct {
	Deleter datasources.ExpiredSessionDeleter
	Now     func() time.Time
}

func NewReapExpiredSessions(deleter datasources.ExpiredSessionDeleter) *ReapExpiredSessions {
	return &ReapExpiredSessions{
		Deleter: deleter,
		Now:     time.Now,
	}
}

// Execute returns the number of sessions deleted.
func (c *ReapExpiredSessions) Execute(ctx context.Context, _ Empty) (int64, error) {
	n, err := c.Deleter.DeleteExpiredSessions(ctx, c.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("deleting expired sessions: %w", err)
	}
	return n, nil
}
