package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

// SetFavoriteRequest is the request for the AddFavorite and RemoveFavorite
// commands. OwnerID is the user whose favorites are being changed.
type SetFavoriteRequest struct {
	ActorID   int64
	OwnerID   int64
	ArticleID int64
}

func (r SetFavoriteRequest) authorize() error {
	if r.ActorID == 0 {
		return domain.ErrUnauthenticated
	}
	if r.ActorID != r.OwnerID {
		return fmt.Errorf("user [%d] changing favorites of user [%d]: %w", r.ActorID, r.OwnerID, domain.ErrForbidden)
	}
	return nil
}

type AddFavorite struct {
	Adder datasources.FavoriteAdder
}

func NewAddFavorite(adder datasources.FavoriteAdder) *AddFavorite {
	return &AddFavorite{Adder: adder}
}

// Execute is idempotent.
func (c *AddFavorite) Execute(ctx context.Context, req SetFavoriteRequest) (Empty, error) {
	if err := req.authorize(); err != nil {
		return Empty{}, err
	}

	if err := c.Adder.AddFavorite(ctx, req.OwnerID, req.ArticleID); err != nil {
		return Empty{}, fmt.Errorf("adding favorite: %w", err)
	}
	return Empty{}, nil
}

type RemoveFavorite struct {
	Remover datasources.FavoriteRemover
}

func NewRemoveFavorite(remover datasources.FavoriteRemover) *RemoveFavorite {
	return &RemoveFavorite{Remover: remover}
}

// Execute returns domain.ErrNotFound if the article was not a favorite.
func (c *RemoveFavorite) Execute(ctx context.Context, req SetFavoriteRequest) (Empty, error) {
	if err := req.authorize(); err != nil {
		return Empty{}, err
	}

	if err := c.Remover.RemoveFavorite(ctx, req.OwnerID, req.ArticleID); err != nil {
		return Empty{}, fmt.Errorf("removing favorite: %w", err)
	}
	return Empty{}, nil
}
