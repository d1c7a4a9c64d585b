package service

import (
	"context"
	"errors"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/store"
)

var ErrInvalidStatus = errors.New("invalid_status")

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// GetUserByEmail fetches a user by email (exact match).
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetUserByEmail(ctx, email)
}

// ListUsers returns every account, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// ListFarmers returns every farmer account, newest first.
func (s *UserService) ListFarmers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsersByRole(ctx, domain.RoleFarmer)
}

// UpdateStatus sets an account's status tag. Suspension does not revoke
// outstanding session tokens; they stay valid until expiry.
func (s *UserService) UpdateStatus(ctx context.Context, userID, status string) error {
	if !domain.ValidUserStatus(status) {
		return ErrInvalidStatus
	}
	return s.Store.Users().UpdateUserStatus(ctx, userID, status)
}
