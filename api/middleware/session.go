package middleware

import (
	"context"
	"net/http"

	"github.com/sundrymarket/storefront/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionCtxKey struct{}

// Session copies the caller's session header into the request context so
// cart handlers can resolve the right cart. A missing header is left for the
// handler to reject.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session identifier attached by Session, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
