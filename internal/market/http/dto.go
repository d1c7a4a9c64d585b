package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agrioasis/market/internal/market/domain"

	"github.com/go-playground/validator/v10"
)

// validate is the shared singleton; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// MessageResponse is the uniform error (and simple-ack) envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// decodeJSON parses and validates a JSON request body into dst. The
// returned message is already client-presentable.
func decodeJSON(r *http.Request, dst any) (string, bool) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return "Invalid request body", false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return validationMessage(verrs[0]), false
		}
		return "Validation failed", false
	}
	return "", true
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	}
	return field + " is invalid"
}

// UserView is the public shape of an account. The password hash never
// leaves the service.
type UserView struct {
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

func toUserView(u domain.User) UserView {
	return UserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
		JoinDate: u.JoinDate,
		Sales:    u.Sales,
		Products: u.Products,
		Spent:    u.Spent,
		Orders:   u.Orders,
	}
}

func toUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return out
}

type ProductView struct {
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

func toProductView(p domain.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Image:       p.Image,
		FarmerID:    p.FarmerID,
		FarmerName:  p.FarmerName,
		Rating:      p.Rating,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductViews(products []domain.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out
}

type OrderView struct {
	ID              string             `json:"id"`
	Items           []domain.OrderItem `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          string             `json:"status"`
	FarmerID        string             `json:"farmerId"`
	UserID          string             `json:"userId"`
	UserName        string             `json:"userName"`
	UserContact     string             `json:"userContact"`
	ShippingAddress string             `json:"shippingAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
}

func toOrderView(o domain.Order) OrderView {
	return OrderView{
		ID:              o.ID,
		Items:           o.Items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		FarmerID:        o.FarmerID,
		UserID:          o.UserID,
		UserName:        o.UserName,
		UserContact:     o.UserContact,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderViews(orders []domain.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return out
}
