package http

import (
	"errors"
	"net/http"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/httpx"
)

type OrdersHandler struct {
	OrderService *service.OrderService
	UserService  *service.UserService
}

type OrderLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required,max=500"`
	Contact         string             `json:"contact" validate:"max=60"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// HandleList godoc
//
//	@Summary	List All Orders
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{array}	OrderView
//	@Security	BearerAuth
//	@Router		/api/orders [get].
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderService.List(r.Context())
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load orders"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrderViews(orders))
}

// HandlePlace godoc
//
//	@Summary	Place an Order
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		PlaceOrderRequest	true	"order lines and shipping"
//	@Success	200		{object}	OrderView
//	@Failure	400		{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/orders [post].
func (h *OrdersHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	principal, _ := httpx.PrincipalFromContext(r.Context())

	var req PlaceOrderRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	lines := make([]service.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, service.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.OrderService.Place(r.Context(), principal.Email, req.ShippingAddress, req.Contact, lines)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrderView(order))
}

// HandleListByFarmer godoc
//
//	@Summary	Orders Routed to a Farmer
//	@Tags		Orders
//	@Produce	json
//	@Param		farmerId	path	string	true	"farmer id"
//	@Success	200			{array}	OrderView
//	@Security	BearerAuth
//	@Router		/api/orders/farmer/{farmerId} [get].
func (h *OrdersHandler) HandleListByFarmer(w http.ResponseWriter, r *http.Request) {
	farmerID := r.PathValue("farmerId")

	if !h.authorizeOwnData(w, r, farmerID, domain.RoleFarmer) {
		return
	}

	orders, err := h.OrderService.ListByFarmer(r.Context(), farmerID)
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load orders"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrderViews(orders))
}

// HandleListByUser godoc
//
//	@Summary	A Buyer's Orders
//	@Tags		Orders
//	@Produce	json
//	@Param		userId	path	string	true	"user id"
//	@Success	200		{array}	OrderView
//	@Security	BearerAuth
//	@Router		/api/orders/user/{userId} [get].
func (h *OrdersHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	if !h.authorizeOwnData(w, r, userID, domain.RoleUser) {
		return
	}

	orders, err := h.OrderService.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load orders"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrderViews(orders))
}

// HandleSetStatus godoc
//
//	@Summary	Advance Order Status
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"order id"
//	@Param		body	body		OrderStatusRequest	true	"new status"
//	@Success	200		{object}	OrderView
//	@Failure	400		{object}	MessageResponse
//	@Failure	404		{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/orders/{id}/status [put].
func (h *OrdersHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	var req OrderStatusRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	order, err := h.OrderService.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrderView(order))
}

// authorizeOwnData lets admins through and otherwise requires the path
// id to resolve to the caller's own account. Applies to the per-farmer
// and per-buyer order listings.
func (h *OrdersHandler) authorizeOwnData(w http.ResponseWriter, r *http.Request, pathID, ownRole string) bool {
	principal, _ := httpx.PrincipalFromContext(r.Context())
	if principal.Role == domain.RoleAdmin {
		return true
	}
	if principal.Role != ownRole {
		httpx.WriteJSON(w, http.StatusForbidden, MessageResponse{Message: "Access denied"})
		return false
	}

	caller, err := h.UserService.GetUserByEmail(r.Context(), principal.Email)
	if err != nil || caller.ID != pathID {
		httpx.WriteJSON(w, http.StatusForbidden, MessageResponse{Message: "Access denied"})
		return false
	}
	return true
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, MessageResponse{Message: "Not found"})
	case errors.Is(err, service.ErrEmptyOrder):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Order has no items"})
	case errors.Is(err, service.ErrProductNotListed):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Product is not available"})
	case errors.Is(err, service.ErrInsufficientQty):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Not enough stock"})
	case errors.Is(err, service.ErrMixedFarmers):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Order must be from a single farm"})
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Unknown status"})
	default:
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Operation failed"})
	}
}
