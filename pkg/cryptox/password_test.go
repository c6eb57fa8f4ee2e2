package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	t.Parallel()

	a, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, a, SaltLength)

	b, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, a, b, "two salts should never collide")
}

func TestHashPasswordDeterministic(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	require.NoError(t, err)

	first := HashPassword("Secret1", salt)
	second := HashPassword("Secret1", salt)
	require.Equal(t, first, second, "same password + same salt must round-trip")
	require.Len(t, first, 64) // SHA-512 digest size
}

func TestHashPasswordSaltSeparation(t *testing.T) {
	t.Parallel()

	saltA, err := GenerateSalt()
	require.NoError(t, err)
	saltB, err := GenerateSalt()
	require.NoError(t, err)

	require.NotEqual(t,
		HashPassword("Secret1", saltA),
		HashPassword("Secret1", saltB),
		"different salts must produce different digests",
	)
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	require.NoError(t, err)
	stored := HashPassword("Secret1", salt)

	require.True(t, VerifyPassword("Secret1", salt, stored))
	require.False(t, VerifyPassword("wrong", salt, stored))
	require.False(t, VerifyPassword("", salt, stored))

	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	require.False(t, VerifyPassword("Secret1", otherSalt, stored))
}
