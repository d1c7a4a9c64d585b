package http

import (
	"errors"
	"net/http"

	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/httpx"
)

type FarmerHandler struct {
	UserService      *service.UserService
	AnalyticsService *service.AnalyticsService
}

// HandleGet godoc
//
//	@Summary	Farmer Profile
//	@Tags		Farmer
//	@Produce	json
//	@Param		id	path		string	true	"farmer id"
//	@Success	200	{object}	UserView
//	@Failure	404	{object}	MessageResponse
//	@Security	BearerAuth
//	@Router		/api/farmer/{id} [get].
func (h *FarmerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	farmer, err := h.UserService.GetUserByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, MessageResponse{Message: "Farmer not found"})
			return
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load farmer"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserView(farmer))
}

// HandleMonthlySales godoc
//
//	@Summary		Monthly Sales
//	@Description	Delivered-order revenue per month over the last 12 months, zero-filled
//	@Tags			Farmer
//	@Produce		json
//	@Param			farmerId	path	string	true	"farmer id"
//	@Success		200			{array}	service.MonthlySales
//	@Security		BearerAuth
//	@Router			/api/farmer/analytics/sales/monthly/{farmerId} [get].
func (h *FarmerHandler) HandleMonthlySales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.AnalyticsService.MonthlySales(r.Context(), r.PathValue("farmerId"))
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load analytics"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sales)
}

// HandleSalesByProduct godoc
//
//	@Summary	Revenue per Product
//	@Tags		Farmer
//	@Produce	json
//	@Param		farmerId	path	string	true	"farmer id"
//	@Success	200			{array}	service.ProductSales
//	@Security	BearerAuth
//	@Router		/api/farmer/analytics/sales/product/{farmerId} [get].
func (h *FarmerHandler) HandleSalesByProduct(w http.ResponseWriter, r *http.Request) {
	sales, err := h.AnalyticsService.SalesByProduct(r.Context(), r.PathValue("farmerId"))
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load analytics"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sales)
}

// HandleListingsByCategory godoc
//
//	@Summary	Listings per Category
//	@Tags		Farmer
//	@Produce	json
//	@Param		farmerId	path	string	true	"farmer id"
//	@Success	200			{array}	service.CategoryCount
//	@Security	BearerAuth
//	@Router		/api/farmer/analytics/sales/category/{farmerId} [get].
func (h *FarmerHandler) HandleListingsByCategory(w http.ResponseWriter, r *http.Request) {
	counts, err := h.AnalyticsService.ListingsByCategory(r.Context(), r.PathValue("farmerId"))
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load analytics"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, counts)
}
