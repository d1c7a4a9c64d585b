package marketsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated view of the API. It carries the bearer
// token from signup/login and the account it belongs to.
type Session struct {
	client *Client

	Token string
	User  User
}

// CreateProduct lists a product (farmer role). New listings await
// moderation.
func (s *Session) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	var p Product
	err := s.client.do(ctx, http.MethodPost, "/api/products", s.Token, in, &p)
	return p, err
}

// UpdateProduct replaces a listing's editable fields (owner only).
func (s *Session) UpdateProduct(ctx context.Context, productID string, in ProductInput) (Product, error) {
	var p Product
	err := s.client.do(ctx, http.MethodPut, "/api/products/"+productID, s.Token, in, &p)
	return p, err
}

// DeleteProduct removes a listing (owner or admin).
func (s *Session) DeleteProduct(ctx context.Context, productID string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/products/"+productID, s.Token, nil, nil)
}

// ModerateProduct applies a moderation decision (admin role).
func (s *Session) ModerateProduct(ctx context.Context, productID, status string) (Product, error) {
	var p Product
	err := s.client.do(ctx, http.MethodPut, "/api/products/"+productID+"/status", s.Token,
		map[string]string{"status": status}, &p)
	return p, err
}

// PlaceOrder submits an order (user role).
func (s *Session) PlaceOrder(ctx context.Context, in OrderInput) (Order, error) {
	var o Order
	err := s.client.do(ctx, http.MethodPost, "/api/orders", s.Token, in, &o)
	return o, err
}

// Orders lists every order visible to the caller.
func (s *Session) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := s.client.do(ctx, http.MethodGet, "/api/orders", s.Token, nil, &orders)
	return orders, err
}

// FarmerOrders lists orders routed to a farmer.
func (s *Session) FarmerOrders(ctx context.Context, farmerID string) ([]Order, error) {
	var orders []Order
	err := s.client.do(ctx, http.MethodGet, "/api/orders/farmer/"+farmerID, s.Token, nil, &orders)
	return orders, err
}

// UserOrders lists a buyer's orders.
func (s *Session) UserOrders(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	err := s.client.do(ctx, http.MethodGet, "/api/orders/user/"+userID, s.Token, nil, &orders)
	return orders, err
}

// SetOrderStatus advances an order's fulfillment status (farmer/admin).
func (s *Session) SetOrderStatus(ctx context.Context, orderID, status string) (Order, error) {
	var o Order
	err := s.client.do(ctx, http.MethodPut, "/api/orders/"+orderID+"/status", s.Token,
		map[string]string{"status": status}, &o)
	return o, err
}

// AdminUsers lists every account (admin role).
func (s *Session) AdminUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := s.client.do(ctx, http.MethodGet, "/api/admin/users", s.Token, nil, &users)
	return users, err
}

// AdminFarmers lists farmer accounts (admin role).
func (s *Session) AdminFarmers(ctx context.Context) ([]User, error) {
	var users []User
	err := s.client.do(ctx, http.MethodGet, "/api/admin/farmers", s.Token, nil, &users)
	return users, err
}

// SetUserStatus sets an account's status (admin role).
func (s *Session) SetUserStatus(ctx context.Context, userID, status string) (User, error) {
	var u User
	err := s.client.do(ctx, http.MethodPut, "/api/admin/users/"+userID+"/status", s.Token,
		map[string]string{"status": status}, &u)
	return u, err
}

// Farmer fetches a farmer profile.
func (s *Session) Farmer(ctx context.Context, farmerID string) (User, error) {
	var u User
	err := s.client.do(ctx, http.MethodGet, "/api/farmer/"+farmerID, s.Token, nil, &u)
	return u, err
}

// MonthlySales fetches a farmer's last-12-months revenue series.
func (s *Session) MonthlySales(ctx context.Context, farmerID string) ([]MonthlySales, error) {
	var sales []MonthlySales
	err := s.client.do(ctx, http.MethodGet, "/api/farmer/analytics/sales/monthly/"+farmerID, s.Token, nil, &sales)
	return sales, err
}

// SalesByProduct fetches a farmer's per-product revenue.
func (s *Session) SalesByProduct(ctx context.Context, farmerID string) ([]ProductSales, error) {
	var sales []ProductSales
	err := s.client.do(ctx, http.MethodGet, "/api/farmer/analytics/sales/product/"+farmerID, s.Token, nil, &sales)
	return sales, err
}

// ListingsByCategory fetches a farmer's listing counts per category.
func (s *Session) ListingsByCategory(ctx context.Context, farmerID string) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := s.client.do(ctx, http.MethodGet, "/api/farmer/analytics/sales/category/"+farmerID, s.Token, nil, &counts)
	return counts, err
}
