package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Quantity    int
	Image       string
	FarmerID    string
	FarmerName  string
	Rating      float64
	Status      string // moderation status tag

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Moderation statuses. New listings start pending and only become
// visible to buyers once an administrator approves them.
const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusRejected:
		return true
	}
	return false
}
