package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a password-authenticated user.
type RegisterUser struct {
	Creator datasources.UserCreator
	Cost    int
}

func NewRegisterUser(creator datasources.UserCreator) *RegisterUser {
	return &RegisterUser{
		Creator: creator,
		Cost:    bcrypt.DefaultCost,
	}
}

// Execute returns the new user's id, or a *domain.ValidationError for bad
// input or a taken username.
func (c *RegisterUser) Execute(ctx context.Context, req domain.RegistrationInput) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.Cost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := c.Creator.CreateUser(ctx, req.Username, string(hash))
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "registered user", "user_id", id)
	return id, nil
}
