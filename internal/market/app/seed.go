package app

import (
	"context"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/pkg/cryptox"
	"github.com/agrioasis/market/pkg/idx"
)

// seed inserts the demo accounts on an empty database: a platform admin
// and a farmer with some trading history. No-op once any user exists.
func (app *Application) seed(ctx context.Context) error {
	empty, err := app.db.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	joinDate := time.Now().UTC().Format("2006-01-02")

	adminHash, err := cryptox.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := domain.User{
		ID:           idx.New().String(),
		Name:         "Admin User",
		Email:        "admin@agrioasis.com",
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
		Status:       domain.UserStatusActive,
		JoinDate:     joinDate,
	}
	if err := app.db.Users().CreateUser(ctx, admin); err != nil {
		return err
	}

	farmerHash, err := cryptox.HashPassword("farmer123")
	if err != nil {
		return err
	}
	farmer := domain.User{
		ID:           idx.New().String(),
		Name:         "John Farmer",
		Email:        "john@farm.com",
		PasswordHash: farmerHash,
		Role:         domain.RoleFarmer,
		Status:       domain.UserStatusActive,
		JoinDate:     joinDate,
		Sales:        2099.5,
		Products:     2,
	}
	if err := app.db.Users().CreateUser(ctx, farmer); err != nil {
		return err
	}

	app.logger.Info("seeded demo accounts",
		"admin", admin.Email,
		"farmer", farmer.Email,
	)
	return nil
}
