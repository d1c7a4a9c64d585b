package http

import (
	"errors"
	"net/http"

	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/httpx"
)

type AdminHandler struct {
	UserService *service.UserService
}

type UserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending suspended"`
}

// HandleListUsers godoc
//
//	@Summary	List All Accounts
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	UserView
//	@Security	BearerAuth
//	@Router		/api/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load users"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserViews(users))
}

// HandleListFarmers godoc
//
//	@Summary	List Farmer Accounts
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	UserView
//	@Security	BearerAuth
//	@Router		/api/admin/farmers [get].
func (h *AdminHandler) HandleListFarmers(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.UserService.ListFarmers(r.Context())
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to load farmers"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserViews(farmers))
}

// HandleSetUserStatus godoc
//
//	@Summary		Set Account Status
//	@Description	Suspension does not revoke outstanding session tokens; they remain valid until expiry
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string				true	"user id"
//	@Param			body	body		UserStatusRequest	true	"new status"
//	@Success		200		{object}	UserView
//	@Failure		400		{object}	MessageResponse
//	@Failure		404		{object}	MessageResponse
//	@Security		BearerAuth
//	@Router			/api/admin/users/{userId}/status [put].
func (h *AdminHandler) HandleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var req UserStatusRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	if err := h.UserService.UpdateStatus(r.Context(), userID, req.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
		case errors.Is(err, service.ErrInvalidStatus):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Unknown status"})
		default:
			httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Operation failed"})
		}
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Operation failed"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserView(user))
}
