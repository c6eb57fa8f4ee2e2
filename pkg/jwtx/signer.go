package jwtx

// Signer is our interface for anything that can sign bearer tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS512 creates an HMAC-SHA512 signer from a server-held
// secret key. Symmetric signing is a fit here because the same service
// both mints and verifies every token.
func NewSignerHS512(secret []byte) (Signer, error) {
	return newHS512Signer(secret)
}
