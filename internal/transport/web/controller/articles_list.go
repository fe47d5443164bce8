package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

// ArticlesListMode selects which listing a route serves.
type ArticlesListMode int

const (
	ArticlesListHome ArticlesListMode = iota
	ArticlesListSearch
	ArticlesListCategory
)

type ArticlesList struct {
	Site   Site
	Lister command.Command[command.ListArticlesRequest, command.ArticlePage]
	Mode   ArticlesListMode
}

type articlesListPage struct {
	view.Base
	Heading   string
	Page      command.ArticlePage
	Paginated bool
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := command.ListArticlesRequest{UserID: domain.UserIDFromContext(ctx)}
	heading := "Latest articles"

	switch c.Mode {
	case ArticlesListHome:
		req.Paginate = true
		req.Page = r.URL.Query().Get("page")
	case ArticlesListSearch:
		req.Pattern = r.URL.Query().Get("q")
		heading = "Search results"
	case ArticlesListCategory:
		categoryID, err := strconv.ParseInt(mux.Vars(r)["category_id"], 10, 64)
		if err != nil {
			c.Site.writeError(w, r, domain.ErrNotFound)
			return
		}
		req.CategoryID = categoryID
	}

	page, err := c.Lister.Execute(ctx, req)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}
	if page.Category != nil {
		heading = page.Category.Name
	}

	base, err := c.Site.base(r, heading)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, http.StatusOK, "home", articlesListPage{
		Base:      base,
		Heading:   heading,
		Page:      page,
		Paginated: req.Paginate,
	})
}
