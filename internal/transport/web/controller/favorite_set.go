package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
)

// FavoriteSet adds or removes a favorite, depending on the command it is
// given, then redirects to the referrer.
type FavoriteSet struct {
	Site   Site
	Setter command.Command[command.SetFavoriteRequest, command.Empty]
}

func (c FavoriteSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	ownerID, err := strconv.ParseInt(vars["user_id"], 10, 64)
	if err != nil {
		c.Site.writeError(w, r, domain.ErrNotFound)
		return
	}
	articleID, err := strconv.ParseInt(vars["article_id"], 10, 64)
	if err != nil {
		c.Site.writeError(w, r, domain.ErrNotFound)
		return
	}

	if _, err := c.Setter.Execute(ctx, command.SetFavoriteRequest{
		ActorID:   domain.UserIDFromContext(ctx),
		OwnerID:   ownerID,
		ArticleID: articleID,
	}); err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	redirectToReferrer(w, r)
}
