package service

import (
	"context"
	"testing"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.signupFarmer(t, "John", "john@farm.example")
	buyer := env.signupBuyer(t, "Alice", "alice@example.com")

	tomatoes := env.approvedProduct(t, farmer.Email, CreateListingInput{
		Name: "Tomatoes", Price: 3.5, Category: "Vegetables", Quantity: 40,
	})
	eggs := env.approvedProduct(t, farmer.Email, CreateListingInput{
		Name: "Eggs", Price: 6.0, Category: "Dairy", Quantity: 10,
	})

	t.Run("captures stored prices and decrements stock", func(t *testing.T) {
		order, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "555-0100", []OrderLine{
			{ProductID: tomatoes.ID, Quantity: 4},
			{ProductID: eggs.ID, Quantity: 2},
		})
		require.NoError(t, err)

		require.Equal(t, domain.OrderStatusPending, order.Status)
		require.Equal(t, farmer.ID, order.FarmerID)
		require.Equal(t, buyer.ID, order.UserID)
		require.InDelta(t, 4*3.5+2*6.0, order.TotalAmount, 1e-9)
		require.Len(t, order.Items, 2)
		require.Equal(t, "Tomatoes", order.Items[0].Name)

		stock, err := env.Products.GetByID(ctx, tomatoes.ID)
		require.NoError(t, err)
		require.Equal(t, 36, stock.Quantity)

		spender, err := env.Users.GetUserByID(ctx, buyer.ID)
		require.NoError(t, err)
		require.InDelta(t, order.TotalAmount, spender.Spent, 1e-9)
		require.Equal(t, 1, spender.Orders)
	})

	t.Run("rejects empty orders", func(t *testing.T) {
		_, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "", nil)
		require.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("rejects unapproved listings", func(t *testing.T) {
		pending, err := env.Products.Create(ctx, farmer.Email, CreateListingInput{Name: "Honey", Price: 12, Quantity: 5})
		require.NoError(t, err)

		_, err = env.Orders.Place(ctx, buyer.Email, "1 Main St", "", []OrderLine{{ProductID: pending.ID, Quantity: 1}})
		require.ErrorIs(t, err, ErrProductNotListed)
	})

	t.Run("rejects overdrawn stock and rolls back", func(t *testing.T) {
		_, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "", []OrderLine{
			{ProductID: eggs.ID, Quantity: 2},
			{ProductID: tomatoes.ID, Quantity: 1000},
		})
		require.ErrorIs(t, err, ErrInsufficientQty)

		// The first line's decrement must not survive the rollback.
		stock, err := env.Products.GetByID(ctx, eggs.ID)
		require.NoError(t, err)
		require.Equal(t, 8, stock.Quantity)
	})

	t.Run("rejects lines spanning farmers", func(t *testing.T) {
		maria := env.signupFarmer(t, "Maria", "maria@farm.example")
		cheese := env.approvedProduct(t, maria.Email, CreateListingInput{Name: "Cheese", Price: 9, Quantity: 6})

		_, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "", []OrderLine{
			{ProductID: tomatoes.ID, Quantity: 1},
			{ProductID: cheese.ID, Quantity: 1},
		})
		require.ErrorIs(t, err, ErrMixedFarmers)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.signupFarmer(t, "John", "john@farm.example")
	buyer := env.signupBuyer(t, "Alice", "alice@example.com")
	p := env.approvedProduct(t, farmer.Email, CreateListingInput{Name: "Tomatoes", Price: 3.5, Quantity: 40})

	order, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "", []OrderLine{{ProductID: p.ID, Quantity: 10}})
	require.NoError(t, err)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := env.Orders.SetStatus(ctx, order.ID, "teleported")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("delivery credits the farmer once", func(t *testing.T) {
		updated, err := env.Orders.SetStatus(ctx, order.ID, domain.OrderStatusDelivered)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusDelivered, updated.Status)

		seller, err := env.Users.GetUserByID(ctx, farmer.ID)
		require.NoError(t, err)
		require.InDelta(t, 35.0, seller.Sales, 1e-9)

		// A repeated delivered update must not double-credit.
		_, err = env.Orders.SetStatus(ctx, order.ID, domain.OrderStatusDelivered)
		require.NoError(t, err)

		seller, err = env.Users.GetUserByID(ctx, farmer.ID)
		require.NoError(t, err)
		require.InDelta(t, 35.0, seller.Sales, 1e-9)
	})

	t.Run("listings by buyer and farmer", func(t *testing.T) {
		byUser, err := env.Orders.ListByUser(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, byUser, 1)

		byFarmer, err := env.Orders.ListByFarmer(ctx, farmer.ID)
		require.NoError(t, err)
		require.Len(t, byFarmer, 1)
		require.Equal(t, order.ID, byFarmer[0].ID)
	})
}

// A delivered update that loses the status race must not credit the
// farmer again, even when it read the order before the winner flipped
// the status.
func TestDeliveredCreditSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.signupFarmer(t, "Pia", "pia@farm.example")
	buyer := env.signupBuyer(t, "Quinn", "quinn@example.com")

	apples := env.approvedProduct(t, farmer.Email, CreateListingInput{
		Name: "Apples", Price: 7.0, Category: "Fruit", Quantity: 10,
	})
	order, err := env.Orders.Place(ctx, buyer.Email, "1 Main St", "", []OrderLine{
		{ProductID: apples.ID, Quantity: 1},
	})
	require.NoError(t, err)

	t.Run("guarded update has exactly one winner", func(t *testing.T) {
		won, err := env.Store.Orders().MarkDelivered(ctx, order.ID)
		require.NoError(t, err)
		require.True(t, won)

		won, err = env.Store.Orders().MarkDelivered(ctx, order.ID)
		require.NoError(t, err)
		require.False(t, won)
	})

	t.Run("losing delivered update does not credit", func(t *testing.T) {
		// The order is already delivered, so the service's own delivered
		// update must see that and skip the credit.
		updated, err := env.Orders.SetStatus(ctx, order.ID, domain.OrderStatusDelivered)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusDelivered, updated.Status)

		seller, err := env.Users.GetUserByID(ctx, farmer.ID)
		require.NoError(t, err)
		require.InDelta(t, 0.0, seller.Sales, 1e-9)
	})
}
