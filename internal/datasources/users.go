package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/article-board/internal/domain"
)

type UserRepository interface {
	UserCreator
	UserByUsernameGetter
	UserByIDGetter
	ExternalUserEnsurer
	AuthorStatsGetter
}

// UserCreator returns a *domain.ValidationError when the username is taken.
type UserCreator interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
}

type UserByUsernameGetter interface {
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserByIDGetter interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
}

// ExternalUserEnsurer finds or creates the local user for an identity
// provider subject.
type ExternalUserEnsurer interface {
	EnsureExternalUser(ctx context.Context, subject, username string) (int64, error)
}

type AuthorStatsGetter interface {
	GetAuthorStats(ctx context.Context, authorID int64) (domain.AuthorStats, error)
}

type SessionRepository interface {
	SessionCreator
	SessionGetter
	SessionDeleter
	ExpiredSessionDeleter
}

type SessionCreator interface {
	CreateSession(ctx context.Context, session domain.Session) error
}

// SessionGetter returns domain.ErrNotFound for unknown or expired sessions.
type SessionGetter interface {
	GetSession(ctx context.Context, id string) (domain.Session, error)
}

type SessionDeleter interface {
	DeleteSession(ctx context.Context, id string) error
}

type ExpiredSessionDeleter interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
