package service

import (
	"context"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/store"
)

type AnalyticsService struct {
	Store store.Store
}

// MonthlySales is one month's delivered-order revenue for a farmer.
type MonthlySales struct {
	Month string  `json:"month"` // short name, e.g. "Jan"
	Sales float64 `json:"sales"`
}

// ProductSales is per-product delivered revenue.
type ProductSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// CategoryCount is the number of listings a farmer has per category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthlySales aggregates a farmer's delivered-order revenue over the
// last 12 calendar months, oldest first, zero-filling months without
// sales.
func (s *AnalyticsService) MonthlySales(ctx context.Context, farmerID string) ([]MonthlySales, error) {
	return s.monthlySalesAt(ctx, farmerID, time.Now().UTC())
}

func (s *AnalyticsService) monthlySalesAt(ctx context.Context, farmerID string, now time.Time) ([]MonthlySales, error) {
	orders, err := s.Store.Orders().ListOrdersByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	totals := make(map[time.Time]float64, 12)
	for _, o := range orders {
		if o.Status != domain.OrderStatusDelivered {
			continue
		}
		created := o.CreatedAt.UTC()
		key := time.Date(created.Year(), created.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[key] += o.TotalAmount
	}

	out := make([]MonthlySales, 0, 12)
	for i := 11; i >= 0; i-- {
		month := current.AddDate(0, -i, 0)
		out = append(out, MonthlySales{
			Month: month.Format("Jan"),
			Sales: totals[month],
		})
	}
	return out, nil
}

// SalesByProduct aggregates a farmer's delivered revenue per product
// name.
func (s *AnalyticsService) SalesByProduct(ctx context.Context, farmerID string) ([]ProductSales, error) {
	orders, err := s.Store.Orders().ListOrdersByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	var names []string
	for _, o := range orders {
		if o.Status != domain.OrderStatusDelivered {
			continue
		}
		for _, item := range o.Items {
			if _, seen := totals[item.Name]; !seen {
				names = append(names, item.Name)
			}
			totals[item.Name] += item.Price * float64(item.Quantity)
		}
	}

	out := make([]ProductSales, 0, len(names))
	for _, name := range names {
		out = append(out, ProductSales{Name: name, Sales: totals[name]})
	}
	return out, nil
}

// ListingsByCategory counts a farmer's listings per category.
func (s *AnalyticsService) ListingsByCategory(ctx context.Context, farmerID string) ([]CategoryCount, error) {
	products, err := s.Store.Products().ListProductsByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var categories []string
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			categories = append(categories, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out, nil
}
