package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

// ArticleDetail shows an article with its comments and votes. Posting to it
// adds a comment.
type ArticleDetail struct {
	Site      Site
	Viewer    command.Command[command.ViewArticleRequest, command.ArticleDetail]
	Commenter command.Command[command.CreateCommentRequest, int64]
}

type articleDetailPage struct {
	view.Base
	Detail      command.ArticleDetail
	Errors      map[string]string
	CommentBody string
}

func (c ArticleDetail) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articleID, err := strconv.ParseInt(mux.Vars(r)["article_id"], 10, 64)
	if err != nil {
		c.Site.writeError(w, r, domain.ErrNotFound)
		return
	}

	var page articleDetailPage
	status := http.StatusOK

	if r.Method == http.MethodPost {
		body := r.PostFormValue("body")
		_, err := c.Commenter.Execute(ctx, command.CreateCommentRequest{
			UserID:    domain.UserIDFromContext(ctx),
			ArticleID: articleID,
			Body:      body,
		})
		fields, invalid := validationFields(err)
		switch {
		case err == nil:
			http.Redirect(w, r, fmt.Sprintf("/articles/%d/", articleID), http.StatusFound)
			return
		case invalid:
			page.Errors = fields
			page.CommentBody = body
			status = http.StatusBadRequest
		default:
			c.Site.writeError(w, r, err)
			return
		}
	}

	detail, err := c.Viewer.Execute(ctx, command.ViewArticleRequest{
		ArticleID: articleID,
		SessionID: domain.SessionIDFromContext(ctx),
		UserID:    domain.UserIDFromContext(ctx),
	})
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}
	page.Detail = detail

	page.Base, err = c.Site.base(r, detail.Article.Title)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, status, "article", page)
}
