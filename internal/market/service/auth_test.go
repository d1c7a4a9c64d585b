package service

import (
	"context"
	"testing"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("creates active account with session token", func(t *testing.T) {
		user, token, err := env.Auth.Signup(ctx, "Alice", "alice@example.com", "secret99", "User")
		require.NoError(t, err)

		require.NotEmpty(t, user.ID)
		require.Equal(t, "user", user.Role, "role tag is lower-cased")
		require.Equal(t, domain.UserStatusActive, user.Status)
		require.Equal(t, time.Now().UTC().Format("2006-01-02"), user.JoinDate)
		require.Zero(t, user.Sales)
		require.Zero(t, user.Spent)
		require.Zero(t, user.Products)
		require.Zero(t, user.Orders)

		claims, err := env.Tokens.Parse(token)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
		require.Equal(t, "user", claims.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, _, err := env.Auth.Signup(ctx, "Alice Again", "alice@example.com", "other111", "user")
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, _, err := env.Auth.Signup(ctx, "Mallory", "mallory@example.com", "secret99", "superadmin")
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signupFarmer(t, "John", "john@farm.example")

	t.Run("success with matching role", func(t *testing.T) {
		user, token, err := env.Auth.Login(ctx, "john@farm.example", "farmer123", "farmer")
		require.NoError(t, err)
		require.Equal(t, "john@farm.example", user.Email)
		require.NotEmpty(t, token)
	})

	t.Run("role comparison is case-insensitive", func(t *testing.T) {
		_, token, err := env.Auth.Login(ctx, "john@farm.example", "farmer123", "FARMER")
		require.NoError(t, err)

		// The minted claim carries the stored tag, not the caller's casing.
		claims, err := env.Tokens.Parse(token)
		require.NoError(t, err)
		require.Equal(t, "farmer", claims.Role)
	})

	t.Run("unknown account", func(t *testing.T) {
		// A missing account is its own failure kind, distinct from a
		// wrong password on an existing one.
		_, _, err := env.Auth.Login(ctx, "nobody@example.com", "farmer123", "farmer")
		require.ErrorIs(t, err, ErrUserNotFound)
		require.NotErrorIs(t, err, ErrBadCredential)
	})

	t.Run("role mismatch beats password check", func(t *testing.T) {
		// Wrong role AND wrong password still reports the role mismatch,
		// matching the fixed check order.
		_, _, err := env.Auth.Login(ctx, "john@farm.example", "wrong-password", "admin")
		require.ErrorIs(t, err, ErrRoleMismatch)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := env.Auth.Login(ctx, "john@farm.example", "wrong-password", "farmer")
		require.ErrorIs(t, err, ErrBadCredential)
	})
}

// Suspending an account does not revoke its outstanding session tokens;
// they stay acceptable until expiry. Known gap inherited from the
// stateless-token design.
func TestSuspendedAccountTokenStaysValid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signupBuyer(t, "Sam", "sam@example.com")
	_, token, err := env.Auth.Login(ctx, "sam@example.com", "user1234", "user")
	require.NoError(t, err)

	require.NoError(t, env.Users.UpdateStatus(ctx, user.ID, domain.UserStatusSuspended))

	require.NoError(t, env.Tokens.Validate(token, "sam@example.com"))
}
