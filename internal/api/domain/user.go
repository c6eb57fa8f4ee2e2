package domain

import "time"

// User is the persisted account record. Email is stored lowercased so
// uniqueness and lookups are case-insensitive. PasswordHash is the
// keyed hash of the plaintext password under PasswordSalt; the two are
// always written together and never recomputed from a stale salt.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}
