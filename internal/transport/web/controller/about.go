package controller

import "net/http"

type About struct {
	Site Site
}

func (c About) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	base, err := c.Site.base(r, "About")
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, http.StatusOK, "about", base)
}
