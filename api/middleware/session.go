package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/internal/sessions"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionCtxKey struct{}

// Session resolves the storefront session from the request header, creating
// one when the client presents none. The resolved id is echoed back so the
// client can persist it.
func Session(manager *sessions.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id uuid.UUID
			if presented := r.Header.Get(sessionIDHeader); presented != "" {
				if parsed, err := uuid.Parse(presented); err == nil {
					id = parsed
				}
			}

			session, err := manager.GetOrCreate(id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			w.Header().Set(sessionIDHeader, session.ID.String())

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, session.ID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session attached by the middleware.
func SessionFromContext(ctx context.Context) (*sessions.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*sessions.Session)
	return session, ok
}
