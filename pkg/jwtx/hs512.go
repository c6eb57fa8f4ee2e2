package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HS512 key size we accept. Anything
// shorter than the digest size weakens the MAC.
const MinSecretLength = 32

// HS512Signer implements the Signer interface using HMAC-SHA512.
type HS512Signer struct {
	secret []byte
	alg    string
}

func newHS512Signer(secret []byte) (*HS512Signer, error) {
	s := &HS512Signer{
		secret: secret,
		alg:    jwt.SigningMethodHS512.Alg(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS512Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS512Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check on the key material.
func (s *HS512Signer) Validate() error {
	if len(s.secret) < MinSecretLength {
		return fmt.Errorf("jwtx: HS512 secret must be at least %d bytes", MinSecretLength)
	}
	return nil
}

// hs512Verifier validates tokens signed with the shared HS512 secret.
type hs512Verifier struct {
	secret []byte
	opts   VerifyOptions
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *hs512Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(v.opts.Leeway))

	// The algorithm check lives in the keyfunc so a token header naming
	// any other method never reaches signature verification.
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
