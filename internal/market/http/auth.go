package http

import (
	"errors"
	"net/http"

	"github.com/agrioasis/market/internal/market/service"
	"github.com/agrioasis/market/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// AuthResponse is the signup/login success payload.
type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// HandleSignup godoc
//
//	@Summary		Register Account
//	@Description	Create a marketplace account and receive a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SignupRequest	true	"registration details"
//	@Success		200		{object}	AuthResponse	"user, token"
//	@Failure		400		{object}	MessageResponse	"message"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	user, token, err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Email already registered"})
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: "Unknown role"})
		default:
			httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Registration failed"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{User: toUserView(user), Token: token})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Authenticate with email, password and role; returns a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"credentials"
//	@Success		200		{object}	AuthResponse	"user, token"
//	@Failure		401		{object}	MessageResponse	"message"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if msg, ok := decodeJSON(r, &req); !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: msg})
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		// Role mismatch and bad password use the same client-facing
		// message so the response does not leak which check failed.
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrBadCredential), errors.Is(err, service.ErrRoleMismatch):
			httpx.WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Invalid credentials"})
		default:
			httpx.WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Login failed"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{User: toUserView(user), Token: token})
}
