package httpx

import "context"

// Principal is the authenticated identity attached to an in-flight
// request after successful token validation. Absent on unauthenticated
// or rejected requests.
type Principal struct {
	Email string
	Role  string
}

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the request's authenticated principal,
// if one was established.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}
