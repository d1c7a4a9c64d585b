package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrioasis/market/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestAllowRole(t *testing.T) {
	t.Run("empty required set allows anyone", func(t *testing.T) {
		require.True(t, httpx.AllowRole("user"))
		require.True(t, httpx.AllowRole(""))
	})

	t.Run("member of required set", func(t *testing.T) {
		require.True(t, httpx.AllowRole("farmer", "farmer", "admin"))
	})

	t.Run("case normalized", func(t *testing.T) {
		require.True(t, httpx.AllowRole("FARMER", "farmer"))
		require.True(t, httpx.AllowRole("farmer", "FARMER"))
	})

	t.Run("non-member denied", func(t *testing.T) {
		require.False(t, httpx.AllowRole("user", "admin"))
	})

	t.Run("anonymous denied when roles required", func(t *testing.T) {
		require.False(t, httpx.AllowRole("", "admin"))
	})
}

func roleGateHandler(required ...string) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return httpx.Chain(inner, httpx.RequireAnyRole(required...))
}

func TestRequireAnyRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req = req.WithContext(httpx.WithPrincipal(req.Context(), httpx.Principal{
			Email: "admin@agrioasis.com",
			Role:  "admin",
		}))

		rec := httptest.NewRecorder()
		roleGateHandler("admin").ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("authenticated but wrong role is forbidden", func(t *testing.T) {
		// Identity is established; access is still denied.
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req = req.WithContext(httpx.WithPrincipal(req.Context(), httpx.Principal{
			Email: "buyer@example.com",
			Role:  "user",
		}))

		rec := httptest.NewRecorder()
		roleGateHandler("admin").ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
	})

	t.Run("anonymous request is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()
		roleGateHandler("user", "farmer", "admin").ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
