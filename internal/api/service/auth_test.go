package service

import (
	"context"
	"testing"
	"time"

	"github.com/kindling-app/kindling/internal/api/store/drivers/sqlite"
	"github.com/kindling-app/kindling/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)

	return &AuthService{
		Store:    st,
		Signer:   signer,
		Issuer:   "kindling-api",
		TokenTTL: time.Hour,
	}
}

func TestRegisterAssignsIDAndToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	user, token, err := svc.Register(ctx, "a@b.com", "Alice", "Secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)
	require.Equal(t, "a@b.com", user.Email)
	require.Equal(t, "Alice", user.DisplayName)
	require.False(t, user.CreatedAt.IsZero())

	// Token is verifiable and carries the user.
	verifier := jwtx.NewVerifierHS512(testSecret, jwtx.VerifyOptions{Issuer: "kindling-api"})
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestRegisterDistinctEmailsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	first, _, err := svc.Register(ctx, "one@x.com", "One", "pw1")
	require.NoError(t, err)
	second, _, err := svc.Register(ctx, "two@x.com", "Two", "pw2")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, _, err := svc.Register(ctx, "a@b.com", "Alice", "Secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "A@B.COM", "Impostor", "other")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// The failed attempt must not have persisted anything.
	members, err := (&MemberService{Store: svc.Store}).List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestLoginSucceedsWithAnyCaseVariant(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registered, _, err := svc.Register(ctx, "a@b.com", "Alice", "Secret1")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "A@B.COM", "Secret1")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, _, err := svc.Register(ctx, "a@b.com", "Alice", "Secret1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)

	_, _, unknownEmail := svc.Login(ctx, "nonexistent@x.com", "anything")
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)

	// Same sentinel, same message; nothing for an enumerator to learn.
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginTokensAreFreshPerCall(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, _, err := svc.Register(ctx, "a@b.com", "Alice", "Secret1")
	require.NoError(t, err)

	_, first, err := svc.Login(ctx, "a@b.com", "Secret1")
	require.NoError(t, err)
	_, second, err := svc.Login(ctx, "a@b.com", "Secret1")
	require.NoError(t, err)
	require.NotEqual(t, first, second, "each login mints a fresh token (jti)")
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	require.Equal(t, "a@b.com", NormalizeEmail("a@b.com"))
}
