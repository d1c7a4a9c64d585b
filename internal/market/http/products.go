package http

import (
	"errors"
	"net/http"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/httpx"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"max=60"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Image       string  `json:"image" validate:"max=500"`
}

type ProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (req ProductRequest) toInput() service.CreateListingInput {
	return service.CreateListingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Image:       req.Image,
	}
}

// HandleList godoc
//
//	@Summary	Browse Catalogue
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	ProductView
//	@Router		/api/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.List(r.Context())
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load products"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductViews(products))
}

// HandleCreate godoc
//
//	@Summary	List a Product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ProductRequest	true	"listing details"
//	@Success	200		{object}	ProductView
//	@Failure	400		{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := httpx.PrincipalFromContext(r.Context())

	var req ProductRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	product, err := h.ProductService.Create(r.Context(), principal.Email, req.toInput())
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to create product"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductView(product))
}

// HandleUpdate godoc
//
//	@Summary	Update a Listing
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"product id"
//	@Param		body	body		ProductRequest	true	"listing details"
//	@Success	200		{object}	ProductView
//	@Failure	403		{object}	MessageResponse
//	@Failure	404		{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := httpx.PrincipalFromContext(r.Context())
	productID := r.PathValue("id")

	var req ProductRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	product, err := h.ProductService.Update(r.Context(), principal.Email, productID, req.toInput())
	if err != nil {
		writeProductError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductView(product))
}

// HandleDelete godoc
//
//	@Summary	Remove a Listing
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	MessageResponse
//	@Failure	403	{object}	MessageResponse
//	@Failure	404	{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := httpx.PrincipalFromContext(r.Context())
	productID := r.PathValue("id")

	isAdmin := principal.Role == domain.RoleAdmin
	if err := h.ProductService.Delete(r.Context(), principal.Email, productID, isAdmin); err != nil {
		writeProductError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted"})
}

// HandleSetStatus godoc
//
//	@Summary	Moderate a Listing
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"product id"
//	@Param		body	body		ProductStatusRequest	true	"moderation decision"
//	@Success	200		{object}	ProductView
//	@Failure	400		{object}	MessageResponse
//	@Failure	404		{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/products/{id}/status [put].
func (h *ProductsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req ProductStatusRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	product, err := h.ProductService.SetStatus(r.Context(), productID, req.Status)
	if err != nil {
		writeProductError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductView(product))
}

func writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
	case errors.Is(err, service.ErrNotOwner):
		httpx.WriteJSON(w, http.StatusForbidden, MessageResponse{Message: "Not your listing"})
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Unknown status"})
	default:
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Operation failed"})
	}
}
