package store

import (
	"context"
	"errors"

	"github.com/kindling-app/kindling/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite
// today) implement this. Sub-repositories keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil error
	// and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A unique-constraint violation on email maps to ErrAlreadyExists,
	// which is the backstop for concurrent registrations racing past the
	// existence check.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up case-insensitively, used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users ordered by creation (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}
