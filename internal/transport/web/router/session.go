package router

import (
	"net/http"

	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/controller"
)

// newSessionMiddleware gives every request a session, starting a new
// anonymous one when the cookie is missing, unknown or expired.
func newSessionMiddleware(
	ensurer command.Command[string, domain.Session],
	cookie controller.SessionCookie,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sent := cookie.Read(r)
			session, err := ensurer.Execute(ctx, sent)
			if err != nil {
				logger := domain.LoggerFromContext(ctx)
				logger.ErrorContext(ctx, "unable to establish session", "error", err)

				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if session.ID != sent {
				cookie.Set(w, session)
			}

			ctx = domain.ContextWithSessionID(ctx, session.ID)
			if session.IsAuthenticated() {
				ctx = domain.ContextWithUserID(ctx, session.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, domain.AuthMethodSession)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
