package cryptox_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/agrioasis/market/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real pepper file.
	cryptox.SetPepperPath(filepath.Join("testdata", "pepper"))
	m.Run()
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("farmer123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	t.Run("correct password verifies", func(t *testing.T) {
		require.NoError(t, cryptox.VerifyPassword("farmer123", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		err := cryptox.VerifyPassword("farmer124", hash)
		require.ErrorIs(t, err, cryptox.ErrPasswordMismatch)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := cryptox.HashPassword("farmer123")
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})
}

func TestVerifyPasswordRejectsBadHashes(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	}
	for _, bad := range cases {
		err := cryptox.VerifyPassword("whatever", bad)
		require.Error(t, err, "hash %q", bad)
		require.NotErrorIs(t, err, cryptox.ErrPasswordMismatch, "hash %q", bad)
	}
}
