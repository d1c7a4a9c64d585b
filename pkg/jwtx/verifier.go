package jwtx

import "errors"

// Verifier validates a session token and gives you back the claims if
// it's legit. Verify checks structure and signature only; expiry is the
// caller's call via Claims.ValidateExpiry so the two failure modes stay
// distinguishable.
type Verifier interface {
	Verify(token string) (Claims, error)

	// KeyFingerprint identifies the verification key for log
	// correlation without exposing the key material.
	KeyFingerprint() string
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrShortKey   = errors.New("jwtx: signing key shorter than 32 bytes")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrSubject      = errors.New("jwtx: subject mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// NewVerifierHS256 creates a verifier sharing the same secret as the
// signer. Same key-length floor as NewSignerHS256.
func NewVerifierHS256(secret []byte, issuer string) (Verifier, error) {
	h, err := newHS256(secret)
	if err != nil {
		return nil, err
	}
	h.issuer = issuer
	return h, nil
}
