package jwtx

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256KeyLen is the minimum signing-key length for HS256. HMAC-SHA256
// needs at least a 256-bit key to keep its full security margin.
const MinHS256KeyLen = 32

// hs256 signs and verifies tokens with a single process-wide shared
// secret. The key is read-only after construction, so one instance is
// safe for concurrent use across requests.
type hs256 struct {
	key    []byte
	issuer string
}

func newHS256(secret []byte) (*hs256, error) {
	if len(secret) < MinHS256KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrShortKey, len(secret))
	}

	key := make([]byte, len(secret))
	copy(key, secret)
	return &hs256{key: key}, nil
}

func (h *hs256) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (h *hs256) KeyFingerprint() string {
	sum := sha256.Sum256(h.key)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Sign produces a compact header.payload.signature token.
func (h *hs256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(h.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks its signature against the shared
// secret. Claims validation (exp) is deliberately skipped here; see
// Claims.ValidateExpiry.
func (h *hs256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSig, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
