package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/httpx"
	"github.com/agrioasis/market/pkg/jwtx"
	"github.com/agrioasis/market/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	ProductService   *service.ProductService
	OrderService     *service.OrderService
	AnalyticsService *service.AnalyticsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProducts()
	r.registerOrders()
	r.registerAdmin()
	r.registerFarmer()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AgriOasis Marketplace API
//	@version		0.1.0
//	@description	Backend for the farm-to-buyer marketplace: account registration
//	@description	and login with JWT sessions, product listings with admin
//	@description	moderation, order placement and fulfillment, and farmer sales
//	@description	analytics.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, a role gate and a per-account
// rate limit. Roles may be empty for endpoints any authenticated (or
// anonymous) caller may hit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(roles...),
		httpx.RateLimitByPrincipal(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Registered WITHOUT AuthnMiddleware: credentials arrive in the
	// body, never as a bearer token, and a stale Authorization header
	// must not block a login attempt. Strict IP limit against brute
	// force.
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	// Public catalogue browse, generous IP limit
	r.Mux.Handle("GET /api/products",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /api/products",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, domain.RoleFarmer))
	r.Mux.Handle("PUT /api/products/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, domain.RoleFarmer))
	r.Mux.Handle("DELETE /api/products/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, domain.RoleFarmer, domain.RoleAdmin))
	r.Mux.Handle("PUT /api/products/{id}/status",
		r.secured(http.HandlerFunc(h.HandleSetStatus), httpx.ModerateLimit, domain.RoleAdmin))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService, UserService: r.UserService}

	r.Mux.Handle("GET /api/orders",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit,
			domain.RoleUser, domain.RoleFarmer, domain.RoleAdmin))
	r.Mux.Handle("POST /api/orders",
		r.secured(http.HandlerFunc(h.HandlePlace), httpx.ModerateLimit, domain.RoleUser))
	r.Mux.Handle("GET /api/orders/farmer/{farmerId}",
		r.secured(http.HandlerFunc(h.HandleListByFarmer), httpx.LenientLimit,
			domain.RoleFarmer, domain.RoleAdmin))
	r.Mux.Handle("GET /api/orders/user/{userId}",
		r.secured(http.HandlerFunc(h.HandleListByUser), httpx.LenientLimit,
			domain.RoleUser, domain.RoleAdmin))
	r.Mux.Handle("PUT /api/orders/{id}/status",
		r.secured(http.HandlerFunc(h.HandleSetStatus), httpx.ModerateLimit,
			domain.RoleFarmer, domain.RoleAdmin))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/admin/users",
		r.secured(http.HandlerFunc(h.HandleListUsers), httpx.LenientLimit, domain.RoleAdmin))
	r.Mux.Handle("GET /api/admin/farmers",
		r.secured(http.HandlerFunc(h.HandleListFarmers), httpx.LenientLimit, domain.RoleAdmin))
	r.Mux.Handle("PUT /api/admin/users/{userId}/status",
		r.secured(http.HandlerFunc(h.HandleSetUserStatus), httpx.ModerateLimit, domain.RoleAdmin))
}

func (r *Router) registerFarmer() {
	h := &FarmerHandler{UserService: r.UserService, AnalyticsService: r.AnalyticsService}

	farmerOrAdmin := []string{domain.RoleFarmer, domain.RoleAdmin}

	r.Mux.Handle("GET /api/farmer/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit, farmerOrAdmin...))
	r.Mux.Handle("GET /api/farmer/analytics/sales/monthly/{farmerId}",
		r.secured(http.HandlerFunc(h.HandleMonthlySales), httpx.LenientLimit, farmerOrAdmin...))
	r.Mux.Handle("GET /api/farmer/analytics/sales/product/{farmerId}",
		r.secured(http.HandlerFunc(h.HandleSalesByProduct), httpx.LenientLimit, farmerOrAdmin...))
	r.Mux.Handle("GET /api/farmer/analytics/sales/category/{farmerId}",
		r.secured(http.HandlerFunc(h.HandleListingsByCategory), httpx.LenientLimit, farmerOrAdmin...))
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
