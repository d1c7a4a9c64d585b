package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
)

type ordersRepo struct {
	db dbtx
}

const orderColumns = `id, items, total_amount, status, farmer_id, user_id,
	user_name, user_contact, shipping_address, created_at, updated_at`

// Line items are denormalized JSON. Orders are write-once apart from
// their status, so there is nothing relational to gain from a join table.
func scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var (
		o     domain.Order
		items string
	)
	err := row.Scan(
		&o.ID, &items, &o.TotalAmount, &o.Status, &o.FarmerID, &o.UserID,
		&o.UserName, &o.UserContact, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	return o, nil
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (id, items, total_amount, status, farmer_id, user_id,
			user_name, user_contact, shipping_address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, string(items), o.TotalAmount, o.Status, o.FarmerID, o.UserID,
		o.UserName, o.UserContact, o.ShippingAddress, o.CreatedAt, o.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *ordersRepo) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), orderID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ordersRepo) MarkDelivered(ctx context.Context, orderID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ? AND status <> ?`,
		domain.OrderStatusDelivered, time.Now().UTC(), orderID, domain.OrderStatusDelivered)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ordersRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *ordersRepo) ListOrdersByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE farmer_id = ? ORDER BY created_at DESC`, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *ordersRepo) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows rowsScanner) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
