package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kindling-app/kindling/internal/api/domain"
	"github.com/kindling-app/kindling/internal/api/store"
	"github.com/kindling-app/kindling/pkg/cryptox"
	"github.com/kindling-app/kindling/pkg/idx"
	"github.com/kindling-app/kindling/pkg/jwtx"
	"github.com/kindling-app/kindling/pkg/slogx"
)

var (
	ErrDuplicateEmail = errors.New("duplicate_email")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password. Keeping them indistinguishable stops account
	// enumeration through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Register creates a new account with a fresh per-user salt and signs a
// bearer token for the created user.
//
// The duplicate check and insert run in one transaction, and a
// unique-constraint failure at insert time still maps to
// ErrDuplicateEmail. Two concurrent registrations for the same email
// can both pass the existence check; only the constraint decides the
// winner.
func (s *AuthService) Register(
	ctx context.Context,
	email, displayName, password string,
) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	displayName = strings.TrimSpace(displayName)

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: cryptox.HashPassword(password, salt),
		PasswordSalt: salt,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByEmail(ctx, email)
		if err == nil {
			return ErrDuplicateEmail
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateEmail
			}
			return err
		}

		// Re-read to pick up the DB-assigned created_at.
		user, err = tx.Users().GetUserByID(ctx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			l.Info("registration rejected, email taken", slog.String("email", email))
		}
		return domain.User{}, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return domain.User{}, "", err
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// The stored digest comparison is constant-time.
func (s *AuthService) Login(
	ctx context.Context,
	email, password string,
) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if !cryptox.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		l.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) signToken(user domain.User) (string, error) {
	claims := jwtx.NewClaims(
		user.ID,
		user.Email,
		user.DisplayName,
		s.Issuer,
		s.TokenTTL,
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}

// NormalizeEmail lowercases and trims an email so comparisons are
// case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
