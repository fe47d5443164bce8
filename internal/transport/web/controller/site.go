package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

// Renderer writes a named page with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Site holds what every HTML page needs: the renderer and the data shown
// in the shared layout.
type Site struct {
	Renderer   Renderer
	Categories datasources.CategoryLister
	Users      datasources.UserByIDGetter
}

type errorPage struct {
	view.Base
	Status  int
	Message string
}

func (s Site) base(r *http.Request, title string) (view.Base, error) {
	ctx := r.Context()

	categories, err := s.Categories.ListCategories(ctx)
	if err != nil {
		return view.Base{}, err
	}

	b := view.Base{Title: title, Categories: categories}
	if userID := domain.UserIDFromContext(ctx); userID != 0 {
		user, err := s.Users.GetUserByID(ctx, userID)
		if err != nil {
			return view.Base{}, err
		}
		b.User = &user
	}
	return b, nil
}

func (s Site) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := s.Renderer.Render(w, status, name, data); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to render page", "error", err, "page", name)

		w.WriteHeader(http.StatusInternalServerError)
	}
}

// writeError maps an error from a command onto a response.
func (s Site) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		redirectToLogin(w, r)
		return
	case errors.Is(err, domain.ErrNotFound):
		logger.DebugContext(ctx, "not found", "error", err)
		s.writeErrorPage(w, r, http.StatusNotFound, "The page you were looking for does not exist.")
	case errors.Is(err, domain.ErrForbidden):
		logger.WarnContext(ctx, "forbidden", "error", err)
		s.writeErrorPage(w, r, http.StatusForbidden, "You do not have permission to do that.")
	case errors.As(err, &verr):
		s.writeErrorPage(w, r, http.StatusBadRequest, verr.Error())
	default:
		logger.ErrorContext(ctx, "unable to handle request", "error", err)
		s.writeErrorPage(w, r, http.StatusInternalServerError, "Something went wrong.")
	}
}

func (s Site) writeErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	b, err := s.base(r, http.StatusText(status))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load page layout", "error", err)

		http.Error(w, message, status)
		return
	}

	s.render(w, r, status, "error", errorPage{Base: b, Status: status, Message: message})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
}

// redirectToReferrer sends the user back to the page they came from, when
// that page is on this site.
func redirectToReferrer(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, referrerPath(r), http.StatusFound)
}

func referrerPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" {
		return "/"
	}

	p := ref.EscapedPath()
	if ref.RawQuery != "" {
		p += "?" + ref.RawQuery
	}
	return p
}

// safeNext accepts only local paths, so login cannot redirect off-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}

func validationFields(err error) (map[string]string, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
