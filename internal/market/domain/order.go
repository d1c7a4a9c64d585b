package domain

import "time"

type Order struct {
	ID              string
	Items           []OrderItem
	TotalAmount     float64
	Status          string
	FarmerID        string
	UserID          string
	UserName        string
	UserContact     string
	ShippingAddress string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a denormalized line item. Name and price are captured at
// placement time so later product edits don't rewrite order history.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
