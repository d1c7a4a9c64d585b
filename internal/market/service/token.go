package service

import (
	"time"

	"github.com/agrioasis/market/pkg/jwtx"
)

// TokenService wraps the jwtx signer/verifier pair with the marketplace
// session policy: subject is the account email, the role claim carries
// the persisted role, and sessions last SessionTTL.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	SessionTTL time.Duration
}

func (s *TokenService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// Issue mints a compact session token for the given account.
func (s *TokenService) Issue(email, role string) (string, error) {
	claims := jwtx.NewSessionClaims(email, jwtx.NormalizeRole(role), s.Issuer, s.ttl(), time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Parse verifies structure and signature and returns the claims. It does
// NOT check expiry; see Validate.
func (s *TokenService) Parse(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}

// Validate fully checks a token against an expected subject. Failures
// are reported as distinct error kinds (jwtx.ErrMalformed,
// jwtx.ErrInvalidSig, jwtx.ErrExpired, jwtx.ErrSubject) rather than a
// bare boolean so callers can log and respond precisely.
func (s *TokenService) Validate(token, expectedSubject string) error {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return err
	}
	return claims.ValidateSubject(expectedSubject)
}
