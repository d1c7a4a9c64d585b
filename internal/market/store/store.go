package store

import (
	"context"
	"errors"

	"github.com/agrioasis/market/internal/market/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Products() Products
	Orders() Orders

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped view of the store. All repo calls made
// through it run inside the same database transaction.
type Tx interface {
	Users() Users
	Products() Products
	Orders() Orders

	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the login lookup. Email matching is exact and
	// case-sensitive.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// The email column carries a UNIQUE constraint; a duplicate insert
	// returns ErrAlreadyExists, which makes signup's duplicate check safe
	// against concurrent registrations.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByRole returns all users holding the given role.
	ListUsersByRole(ctx context.Context, role string) ([]domain.User, error)

	// UpdateUserStatus sets the status tag and bumps updated_at.
	UpdateUserStatus(ctx context.Context, userID, status string) error

	// AddSales accumulates a completed sale onto a farmer's counters.
	AddSales(ctx context.Context, userID string, amount float64) error

	// AddSpent accumulates an order total onto a buyer's counters.
	AddSpent(ctx context.Context, userID string, amount float64) error

	// AdjustProductCount bumps a farmer's listed-products counter by delta.
	AdjustProductCount(ctx context.Context, userID string, delta int) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Products interface {
	// GetProductByID returns a product by id.
	GetProductByID(ctx context.Context, id string) (domain.Product, error)

	// CreateProduct inserts a new product (id is ULID).
	CreateProduct(ctx context.Context, p domain.Product) error

	// UpdateProduct replaces the mutable listing fields. The moderation
	// status is NOT touched here; use UpdateProductStatus.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// UpdateProductStatus sets the moderation status tag.
	UpdateProductStatus(ctx context.Context, productID, status string) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error

	// ListProducts returns all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsByFarmer returns a farmer's products, newest first.
	ListProductsByFarmer(ctx context.Context, farmerID string) ([]domain.Product, error)
}

type Orders interface {
	// GetOrderByID returns an order by id.
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)

	// CreateOrder inserts a new order (id is ULID).
	CreateOrder(ctx context.Context, o domain.Order) error

	// UpdateOrderStatus sets the fulfillment status tag.
	UpdateOrderStatus(ctx context.Context, orderID, status string) error

	// MarkDelivered sets the status to delivered only when it is not
	// already, reporting whether this call made the transition. At most
	// one caller wins for a given order.
	MarkDelivered(ctx context.Context, orderID string) (bool, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// ListOrdersByFarmer returns orders routed to a farmer, newest first.
	ListOrdersByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error)

	// ListOrdersByUser returns a buyer's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
