package router

import (
	"net/http"
	"net/url"

	"github.com/jbeshir/article-board/internal/domain"
)

// requireAuthMiddleware sends anonymous visitors to the login page,
// remembering where they were going.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) == 0 {
			logger := domain.LoggerFromContext(r.Context())
			logger.DebugContext(r.Context(), "redirecting anonymous user to login")

			http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
