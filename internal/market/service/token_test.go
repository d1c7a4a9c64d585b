package service

import (
	"testing"
	"time"

	"github.com/agrioasis/market/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceValidate(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "market-test")
	require.NoError(t, err)

	svc := &TokenService{Signer: signer, Verifier: verifier, Issuer: "market-test"}

	token, err := svc.Issue("alice@example.com", "Admin")
	require.NoError(t, err)

	t.Run("valid token and subject", func(t *testing.T) {
		require.NoError(t, svc.Validate(token, "alice@example.com"))
	})

	t.Run("normalizes role on issue", func(t *testing.T) {
		claims, err := svc.Parse(token)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Role)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		require.ErrorIs(t, svc.Validate(token, "bob@example.com"), jwtx.ErrSubject)
	})

	t.Run("garbled token", func(t *testing.T) {
		require.ErrorIs(t, svc.Validate("not-a-token", "alice@example.com"), jwtx.ErrMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("alice@example.com", "user", "market-test",
			time.Hour, time.Now().UTC().Add(-2*time.Hour))
		stale, err := signer.Sign(claims)
		require.NoError(t, err)
		require.ErrorIs(t, svc.Validate(stale, "alice@example.com"), jwtx.ErrExpired)
	})
}
