package httpx

import (
	"net/http"
	"strings"

	"github.com/agrioasis/market/pkg/jwtx"
)

// AllowRole reports whether a principal role satisfies a required role
// set. An empty required set allows everyone, including anonymous
// callers; otherwise the normalized role must be a member.
func AllowRole(principalRole string, required ...string) bool {
	if len(required) == 0 {
		return true
	}

	have := jwtx.NormalizeRole(principalRole)
	if have == "" {
		return false
	}

	for _, want := range required {
		if have == jwtx.NormalizeRole(want) {
			return true
		}
	}
	return false
}

// RequireAnyRole the caller must hold at least one of the provided roles.
// No principal on the request evaluates as deny.
func RequireAnyRole(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, _ := PrincipalFromContext(r.Context())
			if !AllowRole(p.Role, required...) {
				writeBearerRoleError(w, required...)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for an authenticated caller whose role
// doesn't cover the operation.
func writeBearerRoleError(w http.ResponseWriter, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_scope"))
}
