package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/respond"
)

type contextKey string

const identityKey contextKey = "identity"

type Middleware struct {
	Config *config.Config
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{Config: cfg}
}

// AuthMiddleware verifies the raw token in the Authorization header and
// stores the caller's identity in the request context.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.Header.Get("Authorization")
		if tokenStr == "" {
			respond.Error(w, http.StatusForbidden, "Token required")
			return
		}
		// Clients send the bare token, but a Bearer prefix is tolerated
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		identity, err := auth.Verify(tokenStr, m.Config.JwtKey)
		if err != nil {
			respond.Error(w, http.StatusForbidden, "Invalid Token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// WithIdentity returns a copy of ctx carrying identity
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity stored by AuthMiddleware
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
