package httpx

import "net/http"

// Middleware is a composable request-processing stage. Each stage may
// short-circuit (reject) or forward with augmented request-scoped state.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so the first listed middleware runs first on the way in.
// Chain(h, a, b) serves as a(b(h)).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
