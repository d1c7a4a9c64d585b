package jwtx_test

import (
	"testing"
	"time"

	"github.com/agrioasis/market/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "market-api",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("market-api"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("other-service")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("one second before expiry is still valid", func(t *testing.T) {
		exp := now.Add(jwtx.DefaultSessionTTL)
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}
		require.NoError(t, claims.ValidateExpiryAt(exp.Add(-1*time.Second)))
	})

	t.Run("exactly at expiry is expired", func(t *testing.T) {
		exp := now.Add(jwtx.DefaultSessionTTL)
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiryAt(exp), jwtx.ErrExpired)
	})

	t.Run("missing exp claim is invalid", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrInvalidClaim)
	})
}

func TestValidateSubject(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "john@farm.com"},
	}

	t.Run("exact match", func(t *testing.T) {
		require.NoError(t, c.ValidateSubject("john@farm.com"))
	})

	t.Run("different subject", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateSubject("mary@farm.com"), jwtx.ErrSubject)
	})

	t.Run("case sensitive", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateSubject("John@farm.com"), jwtx.ErrSubject)
	})
}

func TestNormalizeRole(t *testing.T) {
	require.Equal(t, "farmer", jwtx.NormalizeRole("FARMER"))
	require.Equal(t, "admin", jwtx.NormalizeRole("  Admin "))
	require.Equal(t, "", jwtx.NormalizeRole(""))
}
