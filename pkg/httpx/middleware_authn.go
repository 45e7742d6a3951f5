package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tokenx"
)

// SessionVerifier verifies a raw bearer token and returns its claims.
// Satisfied by *tokenx.Codec.
type SessionVerifier interface {
	VerifySession(raw string) (tokenx.Claims, error)
}

// AuthnMiddleware authenticates requests carrying a session bearer
// token and injects the principal id and email into the context.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "auth_required", "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifySession(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				writeBearerError(w, "invalid_token", "token verification failed")
				return
			}

			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, c tokenx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyPrincipalID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer token failures.
func writeBearerError(w http.ResponseWriter, code, description string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, code, description)
}
