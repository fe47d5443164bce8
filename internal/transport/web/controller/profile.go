package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

type Profile struct {
	Site   Site
	Getter command.Command[string, domain.Profile]
}

type profilePage struct {
	view.Base
	Profile domain.Profile
}

func (c Profile) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Getter.Execute(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	base, err := c.Site.base(r, profile.User.Username)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, http.StatusOK, "profile", profilePage{Base: base, Profile: profile})
}

type FavoritesList struct {
	Site   Site
	Lister command.Command[string, command.FavoritesResult]
}

type favoritesPage struct {
	view.Base
	Owner    domain.User
	Articles []domain.Article
}

func (c FavoritesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := c.Lister.Execute(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	base, err := c.Site.base(r, "Favorites of "+result.User.Username)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, http.StatusOK, "favorites", favoritesPage{
		Base:     base,
		Owner:    result.User,
		Articles: result.Articles,
	})
}
