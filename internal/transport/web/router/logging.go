package router

import (
	"log/slog"
	"net/http"

	"github.com/jbeshir/article-board/internal/domain"
)

// newLoggingMiddleware attaches a request-scoped logger to the context.
func newLoggingMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.With("method", r.Method, "path", r.URL.Path)
			ctx := domain.ContextWithLogger(r.Context(), logger)

			logger.DebugContext(ctx, "handling request")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
