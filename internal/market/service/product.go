package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/idx"
	"github.com/agrioasis/market/pkg/slogx"
)

var ErrNotOwner = errors.New("not_owner")

type ProductService struct {
	Store store.Store
}

// CreateListingInput carries the farmer-editable fields of a listing.
type CreateListingInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Quantity    int
	Image       string
}

// Create registers a new listing for the farmer identified by email.
// New listings start in moderation ("pending") and the farmer's listed
// products counter is bumped in the same transaction.
func (s *ProductService) Create(ctx context.Context, farmerEmail string, in CreateListingInput) (domain.Product, error) {
	l := slogx.FromContext(ctx)

	farmer, err := s.Store.Users().GetUserByEmail(ctx, farmerEmail)
	if err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Image:       in.Image,
		FarmerID:    farmer.ID,
		FarmerName:  farmer.Name,
		Status:      domain.ProductStatusPending,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Products().CreateProduct(ctx, product); err != nil {
			return err
		}
		return tx.Users().AdjustProductCount(ctx, farmer.ID, 1)
	})
	if err != nil {
		return domain.Product{}, err
	}

	l.Info("product listed",
		slog.String("product_id", product.ID),
		slog.String("farmer_id", farmer.ID),
	)
	return product, nil
}

// Update replaces a listing's editable fields. Only the owning farmer
// may update; the moderation status is preserved.
func (s *ProductService) Update(ctx context.Context, farmerEmail, productID string, in CreateListingInput) (domain.Product, error) {
	farmer, err := s.Store.Users().GetUserByEmail(ctx, farmerEmail)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.Store.Products().GetProductByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if product.FarmerID != farmer.ID {
		return domain.Product{}, ErrNotOwner
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Category = in.Category
	product.Quantity = in.Quantity
	product.Image = in.Image

	if err := s.Store.Products().UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return s.Store.Products().GetProductByID(ctx, productID)
}

// Delete removes a listing. Farmers may only delete their own; admins
// (isAdmin true) may delete any. The owner's product counter is
// decremented in the same transaction.
func (s *ProductService) Delete(ctx context.Context, callerEmail, productID string, isAdmin bool) error {
	product, err := s.Store.Products().GetProductByID(ctx, productID)
	if err != nil {
		return err
	}

	if !isAdmin {
		caller, err := s.Store.Users().GetUserByEmail(ctx, callerEmail)
		if err != nil {
			return err
		}
		if product.FarmerID != caller.ID {
			return ErrNotOwner
		}
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Products().DeleteProduct(ctx, productID); err != nil {
			return err
		}
		return tx.Users().AdjustProductCount(ctx, product.FarmerID, -1)
	})
}

// SetStatus applies a moderation decision (admin only; the handler
// gates the role).
func (s *ProductService) SetStatus(ctx context.Context, productID, status string) (domain.Product, error) {
	if !domain.ValidProductStatus(status) {
		return domain.Product{}, ErrInvalidStatus
	}
	if err := s.Store.Products().UpdateProductStatus(ctx, productID, status); err != nil {
		return domain.Product{}, err
	}
	return s.Store.Products().GetProductByID(ctx, productID)
}

// GetByID fetches a listing by id.
func (s *ProductService) GetByID(ctx context.Context, productID string) (domain.Product, error) {
	return s.Store.Products().GetProductByID(ctx, productID)
}

// List returns all listings, newest first. The public catalogue endpoint
// serves this unfiltered; clients filter on status.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

// ListByFarmer returns a farmer's listings, newest first.
func (s *ProductService) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Product, error) {
	return s.Store.Products().ListProductsByFarmer(ctx, farmerID)
}
