package middleware

import (
	"net/http"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// Recover converts panics into a generic 500 instead of dropping the
// connection, the backend equivalent of a top-level error boundary.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromCtx(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "something went wrong", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
