package controller

import (
	"net/http"

	"github.com/jbeshir/article-board/internal/domain"
)

type NotFound struct {
	Site Site
}

func (c NotFound) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.Site.writeError(w, r, domain.ErrNotFound)
}
