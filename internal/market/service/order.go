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

var (
	ErrEmptyOrder       = errors.New("empty_order")
	ErrInsufficientQty  = errors.New("insufficient_quantity")
	ErrMixedFarmers     = errors.New("mixed_farmers")
	ErrProductNotListed = errors.New("product_not_listed")
)

type OrderService struct {
	Store store.Store
}

// OrderLine is a requested line item. Name and price come from the
// stored product at placement time, never from the client.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// Place creates an order for the buyer identified by email. All lines
// must reference approved listings from a single farmer. Stock is
// decremented and the buyer's spent/order counters are bumped in the
// same transaction.
func (s *OrderService) Place(ctx context.Context, buyerEmail, shippingAddress, contact string, lines []OrderLine) (domain.Order, error) {
	l := slogx.FromContext(ctx)

	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	buyer, err := s.Store.Users().GetUserByEmail(ctx, buyerEmail)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var (
			items    []domain.OrderItem
			total    float64
			farmerID string
		)

		for _, line := range lines {
			product, err := tx.Products().GetProductByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product.Status != domain.ProductStatusApproved {
				return ErrProductNotListed
			}
			if farmerID == "" {
				farmerID = product.FarmerID
			} else if farmerID != product.FarmerID {
				return ErrMixedFarmers
			}
			if line.Quantity <= 0 || line.Quantity > product.Quantity {
				return ErrInsufficientQty
			}

			product.Quantity -= line.Quantity
			if err := tx.Products().UpdateProduct(ctx, product); err != nil {
				return err
			}

			items = append(items, domain.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order = domain.Order{
			ID:              idx.New().String(),
			Items:           items,
			TotalAmount:     total,
			Status:          domain.OrderStatusPending,
			FarmerID:        farmerID,
			UserID:          buyer.ID,
			UserName:        buyer.Name,
			UserContact:     contact,
			ShippingAddress: shippingAddress,
		}

		if err := tx.Orders().CreateOrder(ctx, order); err != nil {
			return err
		}
		return tx.Users().AddSpent(ctx, buyer.ID, total)
	})
	if err != nil {
		return domain.Order{}, err
	}

	l.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("user_id", buyer.ID),
		slog.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// SetStatus moves an order through its fulfillment states. The first
// transition into "delivered" credits the sale onto the farmer's
// counters; repeated delivered updates do not double-credit.
func (s *OrderService) SetStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return domain.Order{}, ErrInvalidStatus
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		order, err := tx.Orders().GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if status != domain.OrderStatusDelivered {
			return tx.Orders().UpdateOrderStatus(ctx, orderID, status)
		}
		// The guarded update decides the delivered transition; only the
		// caller that actually flips the status credits the farmer, so
		// overlapping delivered updates cannot credit twice.
		transitioned, err := tx.Orders().MarkDelivered(ctx, orderID)
		if err != nil {
			return err
		}
		if transitioned {
			return tx.Users().AddSales(ctx, order.FarmerID, order.TotalAmount)
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return s.Store.Orders().GetOrderByID(ctx, orderID)
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.Store.Orders().ListOrders(ctx)
}

// ListByFarmer returns orders routed to a farmer, newest first.
func (s *OrderService) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrdersByFarmer(ctx, farmerID)
}

// ListByUser returns a buyer's orders, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrdersByUser(ctx, userID)
}
