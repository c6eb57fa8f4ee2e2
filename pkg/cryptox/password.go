package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
)

// SaltLength is the size of a per-user password salt in bytes. The salt
// doubles as the HMAC key, so it matches the SHA-512 block-friendly size
// rather than the shorter salts typical of PHC-style hashes.
const SaltLength = 64

// GenerateSalt returns a fresh cryptographically strong salt. Every
// registration gets its own salt; salts are never reused across users.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("cryptox: generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword computes the keyed hash of a plaintext password under the
// given salt: HMAC-SHA512(password, key=salt). The same password hashed
// under two different salts yields unrelated digests, which is what
// defeats precomputed dictionary attacks.
func HashPassword(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// VerifyPassword recomputes the candidate digest and compares it against
// the stored one in constant time. An early-exit byte loop here would
// leak match-prefix length as a timing side-channel.
func VerifyPassword(password string, salt, expected []byte) bool {
	candidate := HashPassword(password, salt)
	return hmac.Equal(candidate, expected)
}
