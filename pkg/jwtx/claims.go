package jwtx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a session token. Tokens are
// stateless bearer credentials with no revocation list, so a compromised
// token stays usable until this window closes (or the signing key is
// rotated, which invalidates every outstanding session at once).
const DefaultSessionTTL = 10 * time.Hour

// Claims are the session-token claims shared across the service. The
// subject is the account email; Role carries the persisted account role
// so authorization never needs a store round-trip.
type Claims struct {
	jwt.RegisteredClaims

	// Role claim: "user", "farmer" or "admin".
	Role string `json:"role,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a login session.
func NewSessionClaims(subject, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp). Kept separate
// from Verify so callers can tell a stale-but-genuine token apart from
// a forged or garbled one.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryAt(time.Now().UTC())
}

// ValidateExpiryAt is ValidateExpiry against an explicit clock. A token
// checked exactly at its expiry instant is already expired.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}

	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	return nil
}

// ValidateSubject cross-checks the embedded subject against the identity
// the caller claims to be. Exact, case-sensitive string equality.
func (c *Claims) ValidateSubject(expected string) error {
	if c.Subject != expected {
		return ErrSubject
	}
	return nil
}

// NormalizeRole lower-cases a role tag for comparison. Roles are stored
// lower-cased but tokens minted by older deployments may differ in case.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
