package sqlite

import (
	"context"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, name, description, price, category, quantity, image,
	farmer_id, farmer_name, rating, status, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Quantity, &p.Image,
		&p.FarmerID, &p.FarmerName, &p.Rating, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, category, quantity, image,
			farmer_id, farmer_name, rating, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Quantity, p.Image,
		p.FarmerID, p.FarmerName, p.Rating, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price = ?, category = ?, quantity = ?, image = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Category, p.Quantity, p.Image,
		time.Now().UTC(), p.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *productsRepo) UpdateProductStatus(ctx context.Context, productID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), productID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *productsRepo) ListProductsByFarmer(ctx context.Context, farmerID string) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE farmer_id = ? ORDER BY created_at DESC`, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows rowsScanner) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
