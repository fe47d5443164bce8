package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const invalidLoginMessage = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// LoginUserRequest is the request for the LoginUser command.
type LoginUserRequest struct {
	Username string
	Password string
	// SessionID is the caller's current session, replaced on success.
	SessionID string
}

type LoginStore interface {
	datasources.UserByUsernameGetter
	datasources.SessionCreator
	datasources.SessionDeleter
}

// LoginUser checks a username and password and starts an authenticated session.
type LoginUser struct {
	Store LoginStore
	TTL   time.Duration
	Now   func() time.Time
}

func NewLoginUser(store LoginStore, ttl time.Duration) *LoginUser {
	return &LoginUser{
		Store: store,
		TTL:   ttl,
		Now:   time.Now,
	}
}

// Execute returns a *domain.ValidationError when the credentials do not match.
func (c *LoginUser) Execute(ctx context.Context, req LoginUserRequest) (domain.Session, error) {
	verr := &domain.ValidationError{}
	if req.Username == "" {
		verr.Add("username", "This field is required.")
	}
	if req.Password == "" {
		verr.Add("password", "This field is required.")
	}
	if err := verr.OrNil(); err != nil {
		return domain.Session{}, err
	}

	user, err := c.Store.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.NewFieldError("form", invalidLoginMessage)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetching user: %w", err)
	}

	// Users provisioned from an identity provider have no password.
	if user.PasswordHash == "" {
		return domain.Session{}, domain.NewFieldError("form", invalidLoginMessage)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.Session{}, domain.NewFieldError("form", invalidLoginMessage)
	}

	if req.SessionID != "" {
		if err := c.Store.DeleteSession(ctx, req.SessionID); err != nil {
			return domain.Session{}, fmt.Errorf("discarding previous session: %w", err)
		}
	}

	now := c.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(c.TTL),
	}
	if err := c.Store.CreateSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "user logged in", "user_id", user.ID)
	return session, nil
}
