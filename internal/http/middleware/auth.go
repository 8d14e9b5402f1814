// Package middleware provides the HTTP middleware chain: session
// authentication, CORS and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"car-service-booking/internal/auth"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

type identityKey struct{}

// TokenVerifier verifies a raw session token. *auth.Service satisfies it.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth guards routes that require a session. Requests without a valid token
// cookie are answered with 401 and never reach the wrapped handler.
type Auth struct {
	Tokens TokenVerifier
	Log    zerolog.Logger
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			unauthorized(w)
			return
		}

		id, err := m.Tokens.Verify(cookie.Value)
		if err != nil {
			m.Log.Warn().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity returns a context carrying id, as Auth would attach it.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached by Auth, if any.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
