package marketsdk

import "time"

// User mirrors the API's account shape.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Status   string  `json:"status"`
	JoinDate string  `json:"joinDate"`
	Sales    float64 `json:"sales"`
	Products int     `json:"products"`
	Spent    float64 `json:"spent"`
	Orders   int     `json:"orders"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image"`
	FarmerID    string    `json:"farmerId"`
	FarmerName  string    `json:"farmerName"`
	Rating      float64   `json:"rating"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	FarmerID        string      `json:"farmerId"`
	UserID          string      `json:"userId"`
	UserName        string      `json:"userName"`
	UserContact     string      `json:"userContact"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// ProductInput carries the farmer-editable listing fields.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}

// OrderLineInput is one requested line of an order.
type OrderLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderInput is the order placement payload.
type OrderInput struct {
	Items           []OrderLineInput `json:"items"`
	ShippingAddress string           `json:"shippingAddress"`
	Contact         string           `json:"contact,omitempty"`
}

type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

type ProductSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type authResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
