package httpx

import (
	"net/http"
	"strings"

	"github.com/agrioasis/market/pkg/jwtx"
	"github.com/agrioasis/market/pkg/slogx"
)

// AuthnMiddleware validates a bearer token and establishes the
// request-scoped principal.
//
// A request without a usable Authorization header is forwarded
// anonymously; role checks further down the chain deny it if the target
// operation needs one. A request that does present a bearer token gets
// exactly one outcome per failure: 401, never a pass-through. Fail
// closed, never fail open.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// Re-entrant invocation must not overwrite an established
			// principal.
			if _, ok := PrincipalFromContext(ctx); ok {
				next.ServeHTTP(w, r)
				return
			}

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed",
					"err", err, "token", raw, "key_fingerprint", v.KeyFingerprint())
				writeBearerError(w, "token verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			// Inject into context for downstream handlers.
			ctx = WithPrincipal(ctx, Principal{
				Email: claims.Subject,
				Role:  jwtx.NormalizeRole(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
