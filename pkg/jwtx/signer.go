package jwtx

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)

	// KeyFingerprint returns a SHA-256 fingerprint of the signing key,
	// safe to log for operational diagnosis. Never the key itself.
	KeyFingerprint() string
}

// NewSignerHS256 creates an HMAC-SHA256 signer from a shared secret.
// The secret must be at least MinHS256KeyLen bytes; anything shorter is
// a process misconfiguration, not a request error.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256(secret)
}
