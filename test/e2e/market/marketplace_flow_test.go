package market_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/agrioasis/market/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

// requireAPIStatus asserts err is an *APIError with the given HTTP status.
func requireAPIStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *marketsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
}

// Full happy path: a farmer lists produce, an admin approves it, a buyer
// orders, the farmer fulfills, and the sale shows up in analytics.
func TestMarketplaceFlow(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()
	client := marketsdk.NewClient(srv.URL)

	farmer, err := client.Signup(ctx, "John", "john@farm.example", "farmer123", "farmer")
	require.NoError(t, err)
	admin, err := client.Signup(ctx, "Root", "root@example.com", "admin123", "admin")
	require.NoError(t, err)
	buyer, err := client.Signup(ctx, "Alice", "alice@example.com", "user1234", "user")
	require.NoError(t, err)

	var product marketsdk.Product
	t.Run("farmer lists produce", func(t *testing.T) {
		product, err = farmer.CreateProduct(ctx, marketsdk.ProductInput{
			Name: "Tomatoes", Description: "Vine ripened", Price: 3.5,
			Category: "Vegetables", Quantity: 40,
		})
		require.NoError(t, err)
		require.Equal(t, "pending", product.Status)
		require.Equal(t, farmer.User.ID, product.FarmerID)
	})

	t.Run("buyer cannot list produce", func(t *testing.T) {
		_, err := buyer.CreateProduct(ctx, marketsdk.ProductInput{Name: "Counterfeit", Price: 1, Quantity: 1})
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("pending product cannot be ordered", func(t *testing.T) {
		_, err := buyer.PlaceOrder(ctx, marketsdk.OrderInput{
			Items:           []marketsdk.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
			ShippingAddress: "1 Main St",
		})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})

	t.Run("moderation requires admin", func(t *testing.T) {
		_, err := farmer.ModerateProduct(ctx, product.ID, "approved")
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("admin approves the listing", func(t *testing.T) {
		approved, err := admin.ModerateProduct(ctx, product.ID, "approved")
		require.NoError(t, err)
		require.Equal(t, "approved", approved.Status)
	})

	var order marketsdk.Order
	t.Run("buyer places an order", func(t *testing.T) {
		order, err = buyer.PlaceOrder(ctx, marketsdk.OrderInput{
			Items:           []marketsdk.OrderLineInput{{ProductID: product.ID, Quantity: 4}},
			ShippingAddress: "1 Main St",
			Contact:         "555-0100",
		})
		require.NoError(t, err)
		require.Equal(t, "pending", order.Status)
		require.InDelta(t, 14.0, order.TotalAmount, 1e-9)
		require.Equal(t, farmer.User.ID, order.FarmerID)
		require.Equal(t, buyer.User.ID, order.UserID)
	})

	t.Run("stock was decremented in the public catalogue", func(t *testing.T) {
		catalogue, err := client.Catalogue(ctx)
		require.NoError(t, err)
		require.Len(t, catalogue, 1)
		require.Equal(t, 36, catalogue[0].Quantity)
	})

	t.Run("buyer cannot advance order status", func(t *testing.T) {
		_, err := buyer.SetOrderStatus(ctx, order.ID, "shipped")
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("farmer fulfills the order", func(t *testing.T) {
		for _, status := range []string{"confirmed", "shipped", "delivered"} {
			updated, err := farmer.SetOrderStatus(ctx, order.ID, status)
			require.NoError(t, err)
			require.Equal(t, status, updated.Status)
		}
	})

	t.Run("sale shows up in farmer analytics", func(t *testing.T) {
		monthly, err := farmer.MonthlySales(ctx, farmer.User.ID)
		require.NoError(t, err)
		require.Len(t, monthly, 12)
		require.InDelta(t, 14.0, monthly[11].Sales, 1e-9)

		byProduct, err := farmer.SalesByProduct(ctx, farmer.User.ID)
		require.NoError(t, err)
		require.Len(t, byProduct, 1)
		require.Equal(t, "Tomatoes", byProduct[0].Name)
		require.InDelta(t, 14.0, byProduct[0].Sales, 1e-9)

		profile, err := farmer.Farmer(ctx, farmer.User.ID)
		require.NoError(t, err)
		require.InDelta(t, 14.0, profile.Sales, 1e-9)
	})

	t.Run("buyer sees own orders, not another buyer's", func(t *testing.T) {
		orders, err := buyer.UserOrders(ctx, buyer.User.ID)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		_, err = buyer.UserOrders(ctx, farmer.User.ID)
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("admin directory endpoints", func(t *testing.T) {
		users, err := admin.AdminUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)

		farmers, err := admin.AdminFarmers(ctx)
		require.NoError(t, err)
		require.Len(t, farmers, 1)

		_, err = farmer.AdminUsers(ctx)
		requireAPIStatus(t, err, http.StatusForbidden)

		var apiErr *marketsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.NotEmpty(t, apiErr.Message)
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t)

	var health struct {
		Status string `json:"status"`
	}
	code := srv.doJSON(t, http.MethodGet, "/livez", "", nil, &health)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", health.Status)

	code = srv.doJSON(t, http.MethodGet, "/readyz", "", nil, &health)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", health.Status)
}
