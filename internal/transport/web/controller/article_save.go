package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

const maxUploadSize = 10 << 20

// ArticleSave serves the create and update forms. Without an article_id
// route variable it creates a new article.
type ArticleSave struct {
	Site    Site
	Fetcher datasources.ArticleFetcher
	Saver   command.Command[command.SaveArticleRequest, int64]
}

type articleFormPage struct {
	view.Base
	ArticleID int64
	Input     domain.ArticleInput
	Errors    map[string]string
}

func (c ArticleSave) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	var page articleFormPage
	if raw, ok := mux.Vars(r)["article_id"]; ok {
		articleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Site.writeError(w, r, domain.ErrNotFound)
			return
		}
		page.ArticleID = articleID
	}

	if userID == 0 {
		c.Site.writeError(w, r, domain.ErrUnauthenticated)
		return
	}

	status := http.StatusOK
	switch r.Method {
	case http.MethodPost:
		input, photo, err := articleFormInput(r)
		if err != nil {
			c.Site.writeError(w, r, err)
			return
		}
		if photo != nil {
			if closer, ok := photo.Content.(io.Closer); ok {
				defer closer.Close()
			}
		}
		page.Input = input

		savedID, err := c.Saver.Execute(ctx, command.SaveArticleRequest{
			UserID:    userID,
			ArticleID: page.ArticleID,
			Input:     input,
			Photo:     photo,
		})
		fields, invalid := validationFields(err)
		switch {
		case err == nil:
			http.Redirect(w, r, fmt.Sprintf("/articles/%d/", savedID), http.StatusFound)
			return
		case invalid:
			page.Errors = fields
			status = http.StatusBadRequest
		default:
			c.Site.writeError(w, r, err)
			return
		}
	default:
		if page.ArticleID != 0 {
			article, err := command.AuthorizeArticleChange(ctx, c.Fetcher, page.ArticleID, userID)
			if err != nil {
				c.Site.writeError(w, r, err)
				return
			}
			page.Input = domain.ArticleInput{
				Title:            article.Title,
				ShortDescription: article.ShortDescription,
				FullDescription:  article.FullDescription,
				CategoryID:       article.CategoryID,
			}
		}
	}

	title := "New article"
	if page.ArticleID != 0 {
		title = "Edit article"
	}

	var err error
	page.Base, err = c.Site.base(r, title)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, status, "article_form", page)
}

// articleFormInput reads the article form. The photo is nil when no file
// was uploaded.
func articleFormInput(r *http.Request) (domain.ArticleInput, *command.PhotoUpload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return domain.ArticleInput{}, nil, domain.NewFieldError("photo", "The upload could not be read.")
	}

	// An unparsable category is left as zero and reported as missing.
	categoryID, _ := strconv.ParseInt(r.FormValue("category"), 10, 64)
	input := domain.ArticleInput{
		Title:            r.FormValue("title"),
		ShortDescription: r.FormValue("short_description"),
		FullDescription:  r.FormValue("full_description"),
		CategoryID:       categoryID,
	}

	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return input, nil, nil
	case err != nil:
		return domain.ArticleInput{}, nil, fmt.Errorf("reading uploaded photo: %w", err)
	}

	return input, &command.PhotoUpload{Filename: header.Filename, Content: file}, nil
}

// ArticleDelete asks for confirmation on GET and deletes on POST.
type ArticleDelete struct {
	Site    Site
	Fetcher datasources.ArticleFetcher
	Deleter command.Command[command.DeleteArticleRequest, command.Empty]
}

type articleDeletePage struct {
	view.Base
	Article domain.Article
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	articleID, err := strconv.ParseInt(mux.Vars(r)["article_id"], 10, 64)
	if err != nil {
		c.Site.writeError(w, r, domain.ErrNotFound)
		return
	}

	if r.Method == http.MethodPost {
		if _, err := c.Deleter.Execute(ctx, command.DeleteArticleRequest{
			UserID:    userID,
			ArticleID: articleID,
		}); err != nil {
			c.Site.writeError(w, r, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	article, err := command.AuthorizeArticleChange(ctx, c.Fetcher, articleID, userID)
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	base, err := c.Site.base(r, "Delete article")
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, http.StatusOK, "article_delete", articleDeletePage{Base: base, Article: article})
}
