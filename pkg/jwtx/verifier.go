package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a token string and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// NewVerifierHS512 creates a verifier sharing the signer's secret key.
func NewVerifierHS512(secret []byte, opts VerifyOptions) Verifier {
	return &hs512Verifier{secret: secret, opts: opts}
}
